// ABOUTME: Grant MCP tool handlers
// ABOUTME: Implements add_grant, find_grants, update_grant, delete_grant, set_aim_budget
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type GrantHandlers struct {
	store *store.Store
}

func NewGrantHandlers(s *store.Store) *GrantHandlers {
	return &GrantHandlers{store: s}
}

type AddGrantInput struct {
	Title                 string `json:"title" jsonschema:"Grant title (required)"`
	FundingAgency         string `json:"funding_agency,omitempty" jsonschema:"Funding agency name"`
	Amount                int64  `json:"amount,omitempty" jsonschema:"Award amount in cents"`
	StartDate             string `json:"start_date,omitempty" jsonschema:"Start date (YYYY-MM-DD)"`
	EndDate               string `json:"end_date,omitempty" jsonschema:"End date (YYYY-MM-DD)"`
	PrincipalInvestigator string `json:"principal_investigator,omitempty" jsonschema:"PI name"`
}

type AimOutput struct {
	ID               string `json:"id"`
	Number           string `json:"number"`
	Title            string `json:"title"`
	Status           string `json:"status"`
	BudgetAllocation int64  `json:"budget_allocation"`
}

type GrantOutput struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	FundingAgency string      `json:"funding_agency,omitempty"`
	Amount        int64       `json:"amount,omitempty"`
	Status        string      `json:"status"`
	Aims          []AimOutput `json:"aims"`
	BudgetID      string      `json:"budget_id,omitempty"`
	CreatedAt     string      `json:"created_at"`
	UpdatedAt     string      `json:"updated_at"`
}

func grantToOutput(g *models.Grant) GrantOutput {
	out := GrantOutput{
		ID:            g.ID,
		Title:         g.Title,
		FundingAgency: g.FundingAgency,
		Amount:        g.Amount,
		Status:        g.Status,
		BudgetID:      g.BudgetID,
		Aims:          make([]AimOutput, len(g.Aims)),
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     g.UpdatedAt.Format(time.RFC3339),
	}
	for i, a := range g.Aims {
		out.Aims[i] = AimOutput{
			ID:               a.ID,
			Number:           a.Number,
			Title:            a.Title,
			Status:           a.Status,
			BudgetAllocation: a.BudgetAllocation,
		}
	}
	return out
}

func (h *GrantHandlers) AddGrant(_ context.Context, request *mcp.CallToolRequest, input AddGrantInput) (*mcp.CallToolResult, GrantOutput, error) {
	if input.Title == "" {
		return nil, GrantOutput{}, fmt.Errorf("title is required")
	}

	g := models.NewGrant(input.Title)
	g.FundingAgency = input.FundingAgency
	g.Amount = input.Amount
	g.StartDate = input.StartDate
	g.EndDate = input.EndDate
	g.PrincipalInvestigator = input.PrincipalInvestigator
	h.store.AddGrant(g)

	return nil, grantToOutput(g), nil
}

type FindGrantsInput struct {
	Query  string `json:"query,omitempty" jsonschema:"Search query (matches title and agency)"`
	Status string `json:"status,omitempty" jsonschema:"Filter by status (pending, active, completed, rejected)"`
}

type FindGrantsOutput struct {
	Grants []GrantOutput `json:"grants"`
}

func (h *GrantHandlers) FindGrants(_ context.Context, request *mcp.CallToolRequest, input FindGrantsInput) (*mcp.CallToolResult, FindGrantsOutput, error) {
	q := strings.ToLower(input.Query)
	var out FindGrantsOutput
	for _, g := range h.store.Grants() {
		if input.Status != "" && g.Status != input.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(g.Title), q) &&
			!strings.Contains(strings.ToLower(g.FundingAgency), q) {
			continue
		}
		out.Grants = append(out.Grants, grantToOutput(&g))
	}
	return nil, out, nil
}

type UpdateGrantInput struct {
	ID            string `json:"id" jsonschema:"Grant ID (required)"`
	Title         string `json:"title,omitempty" jsonschema:"New title"`
	Status        string `json:"status,omitempty" jsonschema:"New status"`
	FundingAgency string `json:"funding_agency,omitempty" jsonschema:"New funding agency"`
	Amount        *int64 `json:"amount,omitempty" jsonschema:"New award amount in cents"`
}

func (h *GrantHandlers) UpdateGrant(_ context.Context, request *mcp.CallToolRequest, input UpdateGrantInput) (*mcp.CallToolResult, GrantOutput, error) {
	g, err := h.store.GrantByID(input.ID)
	if err != nil {
		return nil, GrantOutput{}, fmt.Errorf("failed to find grant: %w", err)
	}

	if input.Title != "" {
		g.Title = input.Title
	}
	if input.Status != "" {
		g.Status = input.Status
	}
	if input.FundingAgency != "" {
		g.FundingAgency = input.FundingAgency
	}
	if input.Amount != nil {
		g.Amount = *input.Amount
	}

	updated, err := h.store.UpdateGrant(g)
	if err != nil {
		return nil, GrantOutput{}, fmt.Errorf("failed to update grant: %w", err)
	}
	return nil, grantToOutput(&updated), nil
}

type DeleteGrantInput struct {
	ID string `json:"id" jsonschema:"Grant ID (required)"`
}

type DeleteGrantOutput struct {
	Deleted bool   `json:"deleted"`
	Note    string `json:"note"`
}

func (h *GrantHandlers) DeleteGrant(_ context.Context, request *mcp.CallToolRequest, input DeleteGrantInput) (*mcp.CallToolResult, DeleteGrantOutput, error) {
	if err := h.store.DeleteGrant(input.ID); err != nil {
		return nil, DeleteGrantOutput{}, fmt.Errorf("failed to delete grant: %w", err)
	}
	return nil, DeleteGrantOutput{
		Deleted: true,
		Note:    "dependent records keep their references until sync_data runs",
	}, nil
}

type SetAimBudgetInput struct {
	GrantID   string `json:"grant_id" jsonschema:"Grant ID (required)"`
	AimNumber string `json:"aim_number" jsonschema:"Aim label, e.g. 'Aim 2' (required)"`
	Amount    int64  `json:"amount" jsonschema:"Allocation in cents (required)"`
}

type SetAimBudgetOutput struct {
	GrantID   string `json:"grant_id"`
	AimNumber string `json:"aim_number"`
	Amount    int64  `json:"amount"`
}

// SetAimBudget runs the two-way allocation sync. A missing grant or aim is a
// silent no-op, matching the budget screen behavior.
func (h *GrantHandlers) SetAimBudget(_ context.Context, request *mcp.CallToolRequest, input SetAimBudgetInput) (*mcp.CallToolResult, SetAimBudgetOutput, error) {
	if input.GrantID == "" || input.AimNumber == "" {
		return nil, SetAimBudgetOutput{}, fmt.Errorf("grant_id and aim_number are required")
	}
	h.store.UpdateGrantAimBudget(input.GrantID, input.AimNumber, input.Amount)
	return nil, SetAimBudgetOutput{
		GrantID:   input.GrantID,
		AimNumber: input.AimNumber,
		Amount:    input.Amount,
	}, nil
}
