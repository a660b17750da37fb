// ABOUTME: Budget MCP tool handlers
// ABOUTME: Implements add_budget, budget_summary, set_category_allocation, add_expense
package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type BudgetHandlers struct {
	store *store.Store
}

func NewBudgetHandlers(s *store.Store) *BudgetHandlers {
	return &BudgetHandlers{store: s}
}

type AddBudgetInput struct {
	GrantID     string `json:"grant_id,omitempty" jsonschema:"Grant this budget belongs to"`
	Name        string `json:"name,omitempty" jsonschema:"Budget name"`
	TotalBudget int64  `json:"total_budget" jsonschema:"Total budget in cents (required)"`
}

type BudgetOutput struct {
	ID          string `json:"id"`
	GrantID     string `json:"grant_id,omitempty"`
	Name        string `json:"name,omitempty"`
	TotalBudget int64  `json:"total_budget"`
	Spent       int64  `json:"spent"`
	Remaining   int64  `json:"remaining"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func budgetToOutput(b *models.Budget) BudgetOutput {
	return BudgetOutput{
		ID:          b.ID,
		GrantID:     b.GrantID,
		Name:        b.Name,
		TotalBudget: b.TotalBudget,
		Spent:       b.Spent(),
		Remaining:   b.Remaining(),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *BudgetHandlers) AddBudget(_ context.Context, request *mcp.CallToolRequest, input AddBudgetInput) (*mcp.CallToolResult, BudgetOutput, error) {
	b := models.NewBudget(input.GrantID, input.TotalBudget)
	b.Name = input.Name
	h.store.AddBudget(b)
	return nil, budgetToOutput(b), nil
}

type BudgetSummaryInput struct {
	BudgetID string `json:"budget_id" jsonschema:"Budget ID (required)"`
}

type CategorySummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Allocated int64  `json:"allocated"`
	Spent     int64  `json:"spent"`
	Remaining int64  `json:"remaining"`
	PoolCount int    `json:"pool_count"`
}

type BudgetSummaryOutput struct {
	Budget     BudgetOutput      `json:"budget"`
	Categories []CategorySummary `json:"categories"`
}

func (h *BudgetHandlers) BudgetSummary(_ context.Context, request *mcp.CallToolRequest, input BudgetSummaryInput) (*mcp.CallToolResult, BudgetSummaryOutput, error) {
	b, err := h.store.BudgetByID(input.BudgetID)
	if err != nil {
		return nil, BudgetSummaryOutput{}, fmt.Errorf("failed to find budget: %w", err)
	}

	out := BudgetSummaryOutput{Budget: budgetToOutput(&b)}
	for i := range b.Categories {
		c := &b.Categories[i]
		out.Categories = append(out.Categories, CategorySummary{
			ID:        c.ID,
			Name:      c.Name,
			Allocated: c.Allocated,
			Spent:     c.Spent(),
			Remaining: c.Remaining(),
			PoolCount: len(c.MiniPools),
		})
	}
	return nil, out, nil
}

type SetCategoryAllocationInput struct {
	BudgetID   string `json:"budget_id" jsonschema:"Budget ID (required)"`
	CategoryID string `json:"category_id" jsonschema:"Category ID (required)"`
	Allocated  int64  `json:"allocated" jsonschema:"Allocation in cents (required)"`
}

type SetCategoryAllocationOutput struct {
	BudgetID   string `json:"budget_id"`
	CategoryID string `json:"category_id"`
	Allocated  int64  `json:"allocated"`
}

// SetCategoryAllocation runs the category-to-aim sync direction.
func (h *BudgetHandlers) SetCategoryAllocation(_ context.Context, request *mcp.CallToolRequest, input SetCategoryAllocationInput) (*mcp.CallToolResult, SetCategoryAllocationOutput, error) {
	if input.BudgetID == "" || input.CategoryID == "" {
		return nil, SetCategoryAllocationOutput{}, fmt.Errorf("budget_id and category_id are required")
	}
	h.store.UpdateBudgetCategoryWithGrantSync(input.BudgetID, input.CategoryID, input.Allocated)
	return nil, SetCategoryAllocationOutput{
		BudgetID:   input.BudgetID,
		CategoryID: input.CategoryID,
		Allocated:  input.Allocated,
	}, nil
}

type AddExpenseInput struct {
	BudgetID    string `json:"budget_id" jsonschema:"Budget ID (required)"`
	PoolID      string `json:"pool_id" jsonschema:"Mini-pool ID (required)"`
	Description string `json:"description" jsonschema:"Expense description (required)"`
	Amount      int64  `json:"amount" jsonschema:"Amount in cents (required)"`
	Date        string `json:"date,omitempty" jsonschema:"Expense date (YYYY-MM-DD)"`
	Spent       *bool  `json:"spent,omitempty" jsonschema:"Whether the money is spent (default true)"`
}

type AddExpenseOutput struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Spent       bool   `json:"spent"`
}

func (h *BudgetHandlers) AddExpense(_ context.Context, request *mcp.CallToolRequest, input AddExpenseInput) (*mcp.CallToolResult, AddExpenseOutput, error) {
	if input.Description == "" {
		return nil, AddExpenseOutput{}, fmt.Errorf("description is required")
	}

	e := models.NewExpense(input.Description, input.Amount, input.Date)
	if input.Spent != nil {
		e.Spent = *input.Spent
	}
	if err := h.store.AddExpense(input.BudgetID, input.PoolID, e); err != nil {
		return nil, AddExpenseOutput{}, fmt.Errorf("failed to add expense: %w", err)
	}
	return nil, AddExpenseOutput{ID: e.ID, Description: e.Description, Amount: e.Amount, Spent: e.Spent}, nil
}
