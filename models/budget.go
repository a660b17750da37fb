// ABOUTME: Budget tree models and spend aggregation
// ABOUTME: Spent totals are always recomputed from leaf expenses, never cached
package models

import (
	"time"
)

// Budget holds the money side of a grant. GrantID is a weak reference; the
// category tree is owned inline.
type Budget struct {
	ID          string     `json:"id"`
	GrantID     string     `json:"grantId,omitempty"`
	Name        string     `json:"name,omitempty"`
	TotalBudget int64      `json:"totalBudget"` // in cents
	Categories  []Category `json:"categories"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Category is a budget line. Its name conventionally embeds the aim label
// ("Aim 3 — Travel") so the aim/category sync can match it.
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Allocated int64      `json:"allocated"` // in cents
	MiniPools []MiniPool `json:"miniPools"`
}

// MiniPool is a sub-budget grouping of expenses under a category.
type MiniPool struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Allocated int64     `json:"allocated"` // in cents
	Expenses  []Expense `json:"expenses"`
}

// Expense is the leaf record. Spent defaults to true on creation: an expense
// entered without a flag has already happened.
type Expense struct {
	ID                  string   `json:"id"`
	Description         string   `json:"description"`
	Amount              int64    `json:"amount"` // in cents
	Date                string   `json:"date,omitempty"`
	Spent               bool     `json:"spent"`
	AuthorizationNumber string   `json:"authorizationNumber,omitempty"`
	Receipts            []string `json:"receipts,omitempty"`
}

// Spent sums the pool's spent expenses.
func (p *MiniPool) Spent() int64 {
	var total int64
	for _, e := range p.Expenses {
		if e.Spent {
			total += e.Amount
		}
	}
	return total
}

// Committed sums every expense in the pool, spent or not.
func (p *MiniPool) Committed() int64 {
	var total int64
	for _, e := range p.Expenses {
		total += e.Amount
	}
	return total
}

// Spent sums spent expenses across the category's mini-pools.
func (c *Category) Spent() int64 {
	var total int64
	for i := range c.MiniPools {
		total += c.MiniPools[i].Spent()
	}
	return total
}

// Remaining is the category allocation minus spent expenses.
func (c *Category) Remaining() int64 {
	return c.Allocated - c.Spent()
}

// Spent sums spent expenses across the whole budget tree.
func (b *Budget) Spent() int64 {
	var total int64
	for i := range b.Categories {
		total += b.Categories[i].Spent()
	}
	return total
}

// Allocated sums category allocations.
func (b *Budget) Allocated() int64 {
	var total int64
	for _, c := range b.Categories {
		total += c.Allocated
	}
	return total
}

// Remaining is the total budget minus spent expenses.
func (b *Budget) Remaining() int64 {
	return b.TotalBudget - b.Spent()
}

// CategoryByID finds a category in the budget, or nil.
func (b *Budget) CategoryByID(id string) *Category {
	for i := range b.Categories {
		if b.Categories[i].ID == id {
			return &b.Categories[i]
		}
	}
	return nil
}

// MiniPoolByID finds a mini-pool anywhere in the budget, or nil.
func (b *Budget) MiniPoolByID(id string) *MiniPool {
	for i := range b.Categories {
		for j := range b.Categories[i].MiniPools {
			if b.Categories[i].MiniPools[j].ID == id {
				return &b.Categories[i].MiniPools[j]
			}
		}
	}
	return nil
}

// AimByNumber finds the aim with the exact display label, or nil.
func (g *Grant) AimByNumber(number string) *Aim {
	for i := range g.Aims {
		if g.Aims[i].Number == number {
			return &g.Aims[i]
		}
	}
	return nil
}

// AimByID finds an aim by id, or nil.
func (g *Grant) AimByID(id string) *Aim {
	for i := range g.Aims {
		if g.Aims[i].ID == id {
			return &g.Aims[i]
		}
	}
	return nil
}
