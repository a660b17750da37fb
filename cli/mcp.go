// ABOUTME: MCP server subcommand
// ABOUTME: Starts the MCP server for Claude Desktop integration
package cli

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/grantdesk/handlers"
	"github.com/harperreed/grantdesk/store"
)

// MCPCommand starts the MCP server on stdio
func MCPCommand(s *store.Store) error {
	log.Println("Starting grantdesk MCP server...")

	grantHandlers := handlers.NewGrantHandlers(s)
	budgetHandlers := handlers.NewBudgetHandlers(s)
	taskHandlers := handlers.NewTaskHandlers(s)
	queryHandlers := handlers.NewQueryHandlers(s)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "grantdesk",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_grant",
		Description: "Add a new grant with funder, amount, and dates",
	}, grantHandlers.AddGrant)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_grants",
		Description: "Search for grants by title, funder, or status",
	}, grantHandlers.FindGrants)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_grant",
		Description: "Update an existing grant's title, funder, status, or amount",
	}, grantHandlers.UpdateGrant)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_grant",
		Description: "Delete a grant (references in other records are left for sync_data to clear)",
	}, grantHandlers.DeleteGrant)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_aim_budget",
		Description: "Set an aim's budget allocation and sync matching budget categories",
	}, grantHandlers.SetAimBudget)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_budget",
		Description: "Create a budget attached to a grant",
	}, budgetHandlers.AddBudget)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "budget_summary",
		Description: "Summarize a budget's categories with allocation and spend",
	}, budgetHandlers.BudgetSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_category_allocation",
		Description: "Set a budget category allocation and sync the matching grant aim",
	}, budgetHandlers.SetCategoryAllocation)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_expense",
		Description: "Record an expense against a budget mini-pool",
	}, budgetHandlers.AddExpense)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_task",
		Description: "Add a task to the kanban board",
	}, taskHandlers.AddTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_tasks",
		Description: "Search for tasks by title, status, or grant",
	}, taskHandlers.FindTasks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_task",
		Description: "Update a task's title, status, priority, or due date",
	}, taskHandlers.UpdateTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task from the board",
	}, taskHandlers.DeleteTask)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_all",
		Description: "Search every collection, returning capped per-category results with totals",
	}, queryHandlers.SearchAll)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sync_data",
		Description: "Repair dangling grant references across tasks, meetings, and requests",
	}, queryHandlers.SyncData)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_data",
		Description: "Export all collections as a JSON backup",
	}, queryHandlers.ExportData)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "record_counts",
		Description: "Count records in every collection",
	}, queryHandlers.Counts)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
