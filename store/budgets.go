// ABOUTME: Budget CRUD plus nested category, mini-pool, and expense operations
// ABOUTME: The whole category tree is owned inline; edits rewrite the budgets key
package store

import (
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
)

// Budgets returns a snapshot of the budget collection.
func (s *Store) Budgets() []models.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// BudgetByID returns the budget with the given id.
func (s *Store) BudgetByID(id string) (models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.budgets {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Budget{}, fmt.Errorf("budget %s: %w", id, ErrNotFound)
}

// BudgetsForGrant returns every budget whose grantId matches.
func (s *Store) BudgetsForGrant(grantID string) []models.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Budget
	for _, b := range s.budgets {
		if b.GrantID == grantID {
			out = append(out, b)
		}
	}
	return out
}

// AddBudget assigns an id and timestamps if missing, then appends the budget.
func (s *Store) AddBudget(b *models.Budget) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if b.ID == "" {
		b.ID = models.NewID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
	if b.Categories == nil {
		b.Categories = []models.Category{}
	}

	s.budgets = append(s.budgets, *b)
	s.persist(charm.KeyBudgets)
	s.record("budget", b.ID, "created", b.Name)
}

// UpdateBudget replaces the stored budget with the same id.
func (s *Store) UpdateBudget(b models.Budget) (models.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		if s.budgets[i].ID == b.ID {
			b.CreatedAt = s.budgets[i].CreatedAt
			b.UpdatedAt = time.Now().UTC()
			s.budgets[i] = b
			s.persist(charm.KeyBudgets)
			s.record("budget", b.ID, "updated", b.Name)
			return b, nil
		}
	}
	return models.Budget{}, fmt.Errorf("budget %s: %w", b.ID, ErrNotFound)
}

// DeleteBudget removes a budget by id.
func (s *Store) DeleteBudget(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.budgets {
		if s.budgets[i].ID == id {
			name := s.budgets[i].Name
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			s.persist(charm.KeyBudgets)
			s.record("budget", id, "deleted", name)
			return nil
		}
	}
	return fmt.Errorf("budget %s: %w", id, ErrNotFound)
}

// mutateBudget runs fn against the stored budget and persists on success.
func (s *Store) mutateBudget(id string, fn func(*models.Budget) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutateBudgetLocked(id, fn)
}

func (s *Store) mutateBudgetLocked(id string, fn func(*models.Budget) error) error {
	for i := range s.budgets {
		if s.budgets[i].ID == id {
			if err := fn(&s.budgets[i]); err != nil {
				return err
			}
			s.budgets[i].UpdatedAt = time.Now().UTC()
			s.persist(charm.KeyBudgets)
			return nil
		}
	}
	return fmt.Errorf("budget %s: %w", id, ErrNotFound)
}

// AddCategory appends a category to a budget, assigning an id if missing.
func (s *Store) AddCategory(budgetID string, c models.Category) error {
	return s.mutateBudget(budgetID, func(b *models.Budget) error {
		if c.ID == "" {
			c.ID = models.NewID()
		}
		if c.MiniPools == nil {
			c.MiniPools = []models.MiniPool{}
		}
		b.Categories = append(b.Categories, c)
		s.record("category", c.ID, "created", c.Name)
		return nil
	})
}

// DeleteCategory removes a category and everything nested under it.
func (s *Store) DeleteCategory(budgetID, categoryID string) error {
	return s.mutateBudget(budgetID, func(b *models.Budget) error {
		for i := range b.Categories {
			if b.Categories[i].ID == categoryID {
				name := b.Categories[i].Name
				b.Categories = append(b.Categories[:i], b.Categories[i+1:]...)
				s.record("category", categoryID, "deleted", name)
				return nil
			}
		}
		return fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
	})
}

// AddMiniPool appends a mini-pool to a category.
func (s *Store) AddMiniPool(budgetID, categoryID string, p models.MiniPool) error {
	return s.mutateBudget(budgetID, func(b *models.Budget) error {
		cat := b.CategoryByID(categoryID)
		if cat == nil {
			return fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
		}
		if p.ID == "" {
			p.ID = models.NewID()
		}
		if p.Expenses == nil {
			p.Expenses = []models.Expense{}
		}
		cat.MiniPools = append(cat.MiniPools, p)
		s.record("mini_pool", p.ID, "created", p.Name)
		return nil
	})
}

// UpdateMiniPool replaces a mini-pool anywhere in the budget tree.
func (s *Store) UpdateMiniPool(budgetID string, p models.MiniPool) error {
	return s.mutateBudget(budgetID, func(b *models.Budget) error {
		for ci := range b.Categories {
			pools := b.Categories[ci].MiniPools
			for pi := range pools {
				if pools[pi].ID == p.ID {
					pools[pi] = p
					s.record("mini_pool", p.ID, "updated", p.Name)
					return nil
				}
			}
		}
		return fmt.Errorf("mini-pool %s: %w", p.ID, ErrNotFound)
	})
}

// DeleteMiniPool removes a mini-pool and its expenses.
func (s *Store) DeleteMiniPool(budgetID, poolID string) error {
	return s.mutateBudget(budgetID, func(b *models.Budget) error {
		for ci := range b.Categories {
			pools := b.Categories[ci].MiniPools
			for pi := range pools {
				if pools[pi].ID == poolID {
					name := pools[pi].Name
					b.Categories[ci].MiniPools = append(pools[:pi], pools[pi+1:]...)
					s.record("mini_pool", poolID, "deleted", name)
					return nil
				}
			}
		}
		return fmt.Errorf("mini-pool %s: %w", poolID, ErrNotFound)
	})
}

// AddExpense appends an expense to a mini-pool.
func (s *Store) AddExpense(budgetID, poolID string, e models.Expense) error {
	return s.mutateBudget(budgetID, func(b *models.Budget) error {
		pool := b.MiniPoolByID(poolID)
		if pool == nil {
			return fmt.Errorf("mini-pool %s: %w", poolID, ErrNotFound)
		}
		if e.ID == "" {
			e.ID = models.NewID()
		}
		pool.Expenses = append(pool.Expenses, e)
		s.record("expense", e.ID, "created", e.Description)
		return nil
	})
}

// DeleteExpense removes an expense from whichever mini-pool holds it.
func (s *Store) DeleteExpense(budgetID, expenseID string) error {
	return s.mutateBudget(budgetID, func(b *models.Budget) error {
		for ci := range b.Categories {
			for pi := range b.Categories[ci].MiniPools {
				exp := b.Categories[ci].MiniPools[pi].Expenses
				for ei := range exp {
					if exp[ei].ID == expenseID {
						desc := exp[ei].Description
						b.Categories[ci].MiniPools[pi].Expenses = append(exp[:ei], exp[ei+1:]...)
						s.record("expense", expenseID, "deleted", desc)
						return nil
					}
				}
			}
		}
		return fmt.Errorf("expense %s: %w", expenseID, ErrNotFound)
	})
}
