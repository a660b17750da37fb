// ABOUTME: Binds the assistant's tool set to store operations
// ABOUTME: Also builds the per-turn system prompt from current state
package ai

import (
	"fmt"
	"strings"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

// StoreHandlers wires every tool to its store mutation.
func StoreHandlers(s *store.Store) ToolHandlers {
	return ToolHandlers{
		CreateTask: func(in CreateTaskInput) (string, error) {
			if strings.TrimSpace(in.Title) == "" {
				return "", fmt.Errorf("title is required")
			}
			task := models.NewTask(in.Title)
			task.Description = in.Description
			task.DueDate = in.DueDate
			task.GrantID = in.GrantID
			if in.Priority != "" {
				task.Priority = in.Priority
			}
			s.AddTask(task)
			return fmt.Sprintf("created task %q (%s)", task.Title, task.ID), nil
		},
		UpdateTask: func(in UpdateTaskInput) (string, error) {
			task, err := s.TaskByID(in.ID)
			if err != nil {
				return "", err
			}
			if in.Title != "" {
				task.Title = in.Title
			}
			if in.Description != "" {
				task.Description = in.Description
			}
			if in.Status != "" {
				task.Status = in.Status
			}
			if in.Priority != "" {
				task.Priority = in.Priority
			}
			if in.DueDate != "" {
				task.DueDate = in.DueDate
			}
			if _, err := s.UpdateTask(task); err != nil {
				return "", err
			}
			return fmt.Sprintf("updated task %q", task.Title), nil
		},
		DeleteTask: func(in DeleteTaskInput) (string, error) {
			if err := s.DeleteTask(in.ID); err != nil {
				return "", err
			}
			return fmt.Sprintf("deleted task %s", in.ID), nil
		},
		UpdateGrant: func(in UpdateGrantInput) (string, error) {
			g, err := s.GrantByID(in.ID)
			if err != nil {
				return "", err
			}
			if in.Title != "" {
				g.Title = in.Title
			}
			if in.Status != "" {
				g.Status = in.Status
			}
			if in.FundingAgency != "" {
				g.FundingAgency = in.FundingAgency
			}
			if in.StartDate != "" {
				g.StartDate = in.StartDate
			}
			if in.EndDate != "" {
				g.EndDate = in.EndDate
			}
			if _, err := s.UpdateGrant(g); err != nil {
				return "", err
			}
			return fmt.Sprintf("updated grant %q", g.Title), nil
		},
		UpdateBudget: func(in UpdateBudgetInput) (string, error) {
			b, err := s.BudgetByID(in.ID)
			if err != nil {
				return "", err
			}
			if in.Name != "" {
				b.Name = in.Name
			}
			if in.TotalBudget != nil {
				b.TotalBudget = *in.TotalBudget
			}
			if _, err := s.UpdateBudget(b); err != nil {
				return "", err
			}
			return fmt.Sprintf("updated budget %q", b.Name), nil
		},
		UpdateCategory: func(in UpdateCategoryInput) (string, error) {
			// Silent no-op semantics apply, same as editing from the budget
			// screen: a bad id changes nothing and is not an error.
			s.UpdateBudgetCategoryWithGrantSync(in.BudgetID, in.CategoryID, in.Allocated)
			return fmt.Sprintf("set category %s allocation to %d cents", in.CategoryID, in.Allocated), nil
		},
		UpdateMiniPool: func(in UpdateMiniPoolInput) (string, error) {
			b, err := s.BudgetByID(in.BudgetID)
			if err != nil {
				return "", err
			}
			pool := b.MiniPoolByID(in.PoolID)
			if pool == nil {
				return "", fmt.Errorf("mini-pool %s: %w", in.PoolID, store.ErrNotFound)
			}
			updated := *pool
			if in.Name != "" {
				updated.Name = in.Name
			}
			if in.Allocated != nil {
				updated.Allocated = *in.Allocated
			}
			if err := s.UpdateMiniPool(in.BudgetID, updated); err != nil {
				return "", err
			}
			return fmt.Sprintf("updated mini-pool %q", updated.Name), nil
		},
		DeleteCategory: func(in DeleteCategoryInput) (string, error) {
			if err := s.DeleteCategory(in.BudgetID, in.CategoryID); err != nil {
				return "", err
			}
			return fmt.Sprintf("deleted category %s", in.CategoryID), nil
		},
		DeleteMiniPool: func(in DeleteMiniPoolInput) (string, error) {
			if err := s.DeleteMiniPool(in.BudgetID, in.PoolID); err != nil {
				return "", err
			}
			return fmt.Sprintf("deleted mini-pool %s", in.PoolID), nil
		},
	}
}

// SystemPromptBuilder returns a function that renders the assistant's system
// prompt from current store state at the start of each turn.
func SystemPromptBuilder(s *store.Store) func() string {
	return func() string {
		var b strings.Builder
		b.WriteString("You are a grant program management assistant. ")
		b.WriteString("You help manage grants, budgets, tasks, and related records. ")
		b.WriteString("Use the provided tools to make changes; never invent ids.\n\n")

		if settings := s.Settings(); settings.UserProfile != nil {
			fmt.Fprintf(&b, "User: %s (%s)\n\n", settings.UserProfile.Name, settings.UserProfile.Institution)
		}

		grants := s.Grants()
		fmt.Fprintf(&b, "Current grants (%d):\n", len(grants))
		for _, g := range grants {
			fmt.Fprintf(&b, "- %s %q status=%s", g.ID, g.Title, g.Status)
			for _, aim := range g.Aims {
				fmt.Fprintf(&b, "\n  - %s: %s (allocation %d cents)", aim.Number, aim.Title, aim.BudgetAllocation)
			}
			b.WriteString("\n")
		}

		budgets := s.Budgets()
		fmt.Fprintf(&b, "\nBudgets (%d):\n", len(budgets))
		for _, bu := range budgets {
			fmt.Fprintf(&b, "- %s grant=%s total=%d spent=%d\n", bu.ID, bu.GrantID, bu.TotalBudget, bu.Spent())
			for _, c := range bu.Categories {
				fmt.Fprintf(&b, "  - category %s %q allocated=%d\n", c.ID, c.Name, c.Allocated)
				for _, p := range c.MiniPools {
					fmt.Fprintf(&b, "    - pool %s %q allocated=%d\n", p.ID, p.Name, p.Allocated)
				}
			}
		}

		tasks := s.Tasks()
		fmt.Fprintf(&b, "\nTasks (%d):\n", len(tasks))
		for _, t := range tasks {
			fmt.Fprintf(&b, "- %s %q [%s/%s]\n", t.ID, t.Title, t.Status, t.Priority)
		}

		return b.String()
	}
}
