// ABOUTME: Two-way synchronization between aim allocations and budget categories
// ABOUTME: Matching is by aim label substring in category names, e.g. "Aim 3"
package store

import (
	"regexp"
	"strings"
	"time"

	"github.com/harperreed/grantdesk/charm"
)

// aimLabelRE extracts the aim label embedded in a category name.
var aimLabelRE = regexp.MustCompile(`Aim \d+`)

// UpdateGrantAimBudget sets an aim's budget allocation and pushes the same
// amount to every category (in every budget of that grant) whose name contains
// the aim's label. Missing grant, aim, or budget is a silent no-op: the user
// may simply not have created the corresponding record yet. Timestamps are
// only refreshed when a value actually changes, so repeated calls with the
// same amount leave the state identical.
func (s *Store) UpdateGrantAimBudget(grantID, aimNumber string, amount int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	grantChanged := false
	for gi := range s.grants {
		if s.grants[gi].ID != grantID {
			continue
		}
		for ai := range s.grants[gi].Aims {
			if s.grants[gi].Aims[ai].Number != aimNumber {
				continue
			}
			if s.grants[gi].Aims[ai].BudgetAllocation != amount {
				s.grants[gi].Aims[ai].BudgetAllocation = amount
				s.grants[gi].UpdatedAt = now
				grantChanged = true
			}
		}
	}
	if grantChanged {
		s.persist(charm.KeyGrants)
		s.record("grant", grantID, "updated", "aim "+aimNumber+" allocation synced")
	}

	budgetsChanged := false
	for bi := range s.budgets {
		if s.budgets[bi].GrantID != grantID {
			continue
		}
		touched := false
		for ci := range s.budgets[bi].Categories {
			cat := &s.budgets[bi].Categories[ci]
			if !strings.Contains(cat.Name, aimNumber) {
				continue
			}
			if cat.Allocated != amount {
				cat.Allocated = amount
				touched = true
			}
		}
		if touched {
			s.budgets[bi].UpdatedAt = now
			budgetsChanged = true
		}
	}
	if budgetsChanged {
		s.persist(charm.KeyBudgets)
	}
}

// UpdateBudgetCategoryWithGrantSync sets a category's allocation and, when the
// category name embeds an aim label, pushes the same amount back to the
// matching aim on the budget's grant. Every lookup that fails is a silent
// no-op, same as the forward direction.
func (s *Store) UpdateBudgetCategoryWithGrantSync(budgetID, categoryID string, allocated int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()

	var grantID, categoryName string
	for bi := range s.budgets {
		if s.budgets[bi].ID != budgetID {
			continue
		}
		for ci := range s.budgets[bi].Categories {
			cat := &s.budgets[bi].Categories[ci]
			if cat.ID != categoryID {
				continue
			}
			categoryName = cat.Name
			grantID = s.budgets[bi].GrantID
			if cat.Allocated != allocated {
				cat.Allocated = allocated
				s.budgets[bi].UpdatedAt = now
				s.persist(charm.KeyBudgets)
				s.record("category", categoryID, "updated", cat.Name)
			}
		}
	}

	if grantID == "" || !strings.Contains(categoryName, "Aim") {
		return
	}
	label := aimLabelRE.FindString(categoryName)
	if label == "" {
		return
	}

	for gi := range s.grants {
		if s.grants[gi].ID != grantID {
			continue
		}
		for ai := range s.grants[gi].Aims {
			aim := &s.grants[gi].Aims[ai]
			if aim.Number != label {
				continue
			}
			if aim.BudgetAllocation != allocated {
				aim.BudgetAllocation = allocated
				s.grants[gi].UpdatedAt = now
				s.persist(charm.KeyGrants)
				s.record("grant", grantID, "updated", "aim "+label+" allocation synced")
			}
		}
	}
}
