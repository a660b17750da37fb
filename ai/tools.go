// ABOUTME: Tool declarations and the handler set the assistant dispatches to
// ABOUTME: Each tool maps to exactly one store mutation
package ai

import (
	"encoding/json"
	"fmt"
)

// ToolHandlers is the set of mutations the assistant may apply. Each handler
// receives the raw tool input and returns a short human-readable result.
type ToolHandlers struct {
	CreateTask     func(input CreateTaskInput) (string, error)
	UpdateTask     func(input UpdateTaskInput) (string, error)
	DeleteTask     func(input DeleteTaskInput) (string, error)
	UpdateGrant    func(input UpdateGrantInput) (string, error)
	UpdateBudget   func(input UpdateBudgetInput) (string, error)
	UpdateCategory func(input UpdateCategoryInput) (string, error)
	UpdateMiniPool func(input UpdateMiniPoolInput) (string, error)
	DeleteCategory func(input DeleteCategoryInput) (string, error)
	DeleteMiniPool func(input DeleteMiniPoolInput) (string, error)
}

// CreateTaskInput creates a kanban task.
type CreateTaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
	GrantID     string `json:"grantId,omitempty"`
}

// UpdateTaskInput updates named fields of an existing task.
type UpdateTaskInput struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// DeleteTaskInput removes a task.
type DeleteTaskInput struct {
	ID string `json:"id"`
}

// UpdateGrantInput updates named fields of a grant.
type UpdateGrantInput struct {
	ID            string `json:"id"`
	Title         string `json:"title,omitempty"`
	Status        string `json:"status,omitempty"`
	FundingAgency string `json:"fundingAgency,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
}

// UpdateBudgetInput updates a budget's name or total.
type UpdateBudgetInput struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	TotalBudget *int64 `json:"totalBudget,omitempty"` // cents
}

// UpdateCategoryInput sets a category's allocation, syncing any matching aim.
type UpdateCategoryInput struct {
	BudgetID   string `json:"budgetId"`
	CategoryID string `json:"categoryId"`
	Allocated  int64  `json:"allocated"` // cents
}

// UpdateMiniPoolInput updates a mini-pool's name or allocation.
type UpdateMiniPoolInput struct {
	BudgetID  string `json:"budgetId"`
	PoolID    string `json:"poolId"`
	Name      string `json:"name,omitempty"`
	Allocated *int64 `json:"allocated,omitempty"` // cents
}

// DeleteCategoryInput removes a category and everything under it.
type DeleteCategoryInput struct {
	BudgetID   string `json:"budgetId"`
	CategoryID string `json:"categoryId"`
}

// DeleteMiniPoolInput removes a mini-pool and its expenses.
type DeleteMiniPoolInput struct {
	BudgetID string `json:"budgetId"`
	PoolID   string `json:"poolId"`
}

// schema is a shorthand for inline JSON schemas in the tool table.
func schema(s string) json.RawMessage {
	return json.RawMessage(s)
}

// Tools declares every tool the assistant offers the model.
func Tools() []Tool {
	return []Tool{
		{
			Name:        "create_task",
			Description: "Create a new task on the kanban board. New tasks start in the To Do column.",
			InputSchema: schema(`{"type":"object","properties":{"title":{"type":"string"},"description":{"type":"string"},"priority":{"type":"string","enum":["low","medium","high"]},"dueDate":{"type":"string","description":"YYYY-MM-DD"},"grantId":{"type":"string"}},"required":["title"]}`),
		},
		{
			Name:        "update_task",
			Description: "Update fields of an existing task. Only provided fields change.",
			InputSchema: schema(`{"type":"object","properties":{"id":{"type":"string"},"title":{"type":"string"},"description":{"type":"string"},"status":{"type":"string","enum":["To Do","In Progress","Review","Done"]},"priority":{"type":"string","enum":["low","medium","high"]},"dueDate":{"type":"string"}},"required":["id"]}`),
		},
		{
			Name:        "delete_task",
			Description: "Delete a task by id.",
			InputSchema: schema(`{"type":"object","properties":{"id":{"type":"string"}},"required":["id"]}`),
		},
		{
			Name:        "update_grant",
			Description: "Update fields of a grant. Only provided fields change.",
			InputSchema: schema(`{"type":"object","properties":{"id":{"type":"string"},"title":{"type":"string"},"status":{"type":"string","enum":["pending","active","completed","rejected"]},"fundingAgency":{"type":"string"},"startDate":{"type":"string"},"endDate":{"type":"string"}},"required":["id"]}`),
		},
		{
			Name:        "update_budget",
			Description: "Update a budget's name or total. Amounts are integer cents.",
			InputSchema: schema(`{"type":"object","properties":{"id":{"type":"string"},"name":{"type":"string"},"totalBudget":{"type":"integer"}},"required":["id"]}`),
		},
		{
			Name:        "update_category",
			Description: "Set a budget category's allocated amount in cents. If the category name embeds an aim label like 'Aim 2', the matching aim's allocation is synced too.",
			InputSchema: schema(`{"type":"object","properties":{"budgetId":{"type":"string"},"categoryId":{"type":"string"},"allocated":{"type":"integer"}},"required":["budgetId","categoryId","allocated"]}`),
		},
		{
			Name:        "update_mini_pool",
			Description: "Update a mini-pool's name or allocated amount in cents.",
			InputSchema: schema(`{"type":"object","properties":{"budgetId":{"type":"string"},"poolId":{"type":"string"},"name":{"type":"string"},"allocated":{"type":"integer"}},"required":["budgetId","poolId"]}`),
		},
		{
			Name:        "delete_category",
			Description: "Delete a budget category and everything nested under it.",
			InputSchema: schema(`{"type":"object","properties":{"budgetId":{"type":"string"},"categoryId":{"type":"string"}},"required":["budgetId","categoryId"]}`),
		},
		{
			Name:        "delete_mini_pool",
			Description: "Delete a mini-pool and its expenses.",
			InputSchema: schema(`{"type":"object","properties":{"budgetId":{"type":"string"},"poolId":{"type":"string"}},"required":["budgetId","poolId"]}`),
		},
	}
}

// dispatch executes one tool call against the handler set.
func (h *ToolHandlers) dispatch(name string, input json.RawMessage) (string, error) {
	parse := func(v interface{}) error {
		if err := json.Unmarshal(input, v); err != nil {
			return fmt.Errorf("bad input for %s: %w", name, err)
		}
		return nil
	}

	switch name {
	case "create_task":
		if h.CreateTask == nil {
			return "", fmt.Errorf("tool %s not available", name)
		}
		var in CreateTaskInput
		if err := parse(&in); err != nil {
			return "", err
		}
		return h.CreateTask(in)
	case "update_task":
		if h.UpdateTask == nil {
			return "", fmt.Errorf("tool %s not available", name)
		}
		var in UpdateTaskInput
		if err := parse(&in); err != nil {
			return "", err
		}
		return h.UpdateTask(in)
	case "delete_task":
		if h.DeleteTask == nil {
			return "", fmt.Errorf("tool %s not available", name)
		}
		var in DeleteTaskInput
		if err := parse(&in); err != nil {
			return "", err
		}
		return h.DeleteTask(in)
	case "update_grant":
		if h.UpdateGrant == nil {
			return "", fmt.Errorf("tool %s not available", name)
		}
		var in UpdateGrantInput
		if err := parse(&in); err != nil {
			return "", err
		}
		return h.UpdateGrant(in)
	case "update_budget":
		if h.UpdateBudget == nil {
			return "", fmt.Errorf("tool %s not available", name)
		}
		var in UpdateBudgetInput
		if err := parse(&in); err != nil {
			return "", err
		}
		return h.UpdateBudget(in)
	case "update_category":
		if h.UpdateCategory == nil {
			return "", fmt.Errorf("tool %s not available", name)
		}
		var in UpdateCategoryInput
		if err := parse(&in); err != nil {
			return "", err
		}
		return h.UpdateCategory(in)
	case "update_mini_pool":
		if h.UpdateMiniPool == nil {
			return "", fmt.Errorf("tool %s not available", name)
		}
		var in UpdateMiniPoolInput
		if err := parse(&in); err != nil {
			return "", err
		}
		return h.UpdateMiniPool(in)
	case "delete_category":
		if h.DeleteCategory == nil {
			return "", fmt.Errorf("tool %s not available", name)
		}
		var in DeleteCategoryInput
		if err := parse(&in); err != nil {
			return "", err
		}
		return h.DeleteCategory(in)
	case "delete_mini_pool":
		if h.DeleteMiniPool == nil {
			return "", fmt.Errorf("tool %s not available", name)
		}
		var in DeleteMiniPoolInput
		if err := parse(&in); err != nil {
			return "", err
		}
		return h.DeleteMiniPool(in)
	default:
		return "", fmt.Errorf("unknown tool %q", name)
	}
}
