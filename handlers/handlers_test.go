// ABOUTME: Tests for the MCP tool handlers over a real store
// ABOUTME: Exercises grant, budget, task, and cross-cutting tools end to end
package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	client, cleanup := charm.NewTestClient(t)
	t.Cleanup(cleanup)
	s := store.New(client)
	require.NoError(t, s.Load())
	return s
}

func TestAddGrantRequiresTitle(t *testing.T) {
	h := NewGrantHandlers(newStore(t))
	_, _, err := h.AddGrant(context.Background(), nil, AddGrantInput{})
	assert.Error(t, err)
}

func TestAddAndFindGrants(t *testing.T) {
	s := newStore(t)
	h := NewGrantHandlers(s)

	_, created, err := h.AddGrant(context.Background(), nil, AddGrantInput{
		Title:         "RWJF Pilot",
		FundingAgency: "RWJF",
		Amount:        50000000,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.GrantStatusPending, created.Status)

	_, found, err := h.FindGrants(context.Background(), nil, FindGrantsInput{Query: "rwjf"})
	require.NoError(t, err)
	require.Len(t, found.Grants, 1)

	_, none, err := h.FindGrants(context.Background(), nil, FindGrantsInput{Status: models.GrantStatusActive})
	require.NoError(t, err)
	assert.Empty(t, none.Grants)
}

func TestSetAimBudgetSyncsCategory(t *testing.T) {
	s := newStore(t)

	g := models.NewGrant("RWJF Pilot")
	g.Aims = append(g.Aims, models.NewAim("Aim 3", "Outreach"))
	s.AddGrant(g)
	b := models.NewBudget(g.ID, 0)
	b.Categories = append(b.Categories, models.NewCategory("Aim 3 — Travel", 0))
	s.AddBudget(b)

	h := NewGrantHandlers(s)
	_, out, err := h.SetAimBudget(context.Background(), nil, SetAimBudgetInput{
		GrantID:   g.ID,
		AimNumber: "Aim 3",
		Amount:    5000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), out.Amount)

	got, err := s.GrantByID(g.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got.Aims[0].BudgetAllocation)
	assert.Equal(t, int64(5000), s.Budgets()[0].Categories[0].Allocated)
}

func TestBudgetSummaryAggregates(t *testing.T) {
	s := newStore(t)

	b := models.NewBudget("", 1000000)
	cat := models.NewCategory("Supplies", 300000)
	pool := models.NewMiniPool("Lab", 300000)
	pool.Expenses = append(pool.Expenses, models.NewExpense("Reagents", 40000, "2026-02-01"))
	cat.MiniPools = append(cat.MiniPools, pool)
	b.Categories = append(b.Categories, cat)
	s.AddBudget(b)

	h := NewBudgetHandlers(s)
	_, out, err := h.BudgetSummary(context.Background(), nil, BudgetSummaryInput{BudgetID: b.ID})
	require.NoError(t, err)

	assert.Equal(t, int64(40000), out.Budget.Spent)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, int64(260000), out.Categories[0].Remaining)
	assert.Equal(t, 1, out.Categories[0].PoolCount)
}

func TestTaskLifecycleThroughHandlers(t *testing.T) {
	s := newStore(t)
	h := NewTaskHandlers(s)
	ctx := context.Background()

	_, created, err := h.AddTask(ctx, nil, AddTaskInput{Title: "Submit report", Priority: "high"})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, created.Status)

	_, updated, err := h.UpdateTask(ctx, nil, UpdateTaskInput{ID: created.ID, Status: models.TaskStatusDone})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDone, updated.Status)
	assert.Equal(t, "high", updated.Priority)

	_, del, err := h.DeleteTask(ctx, nil, DeleteTaskInput{ID: created.ID})
	require.NoError(t, err)
	assert.True(t, del.Deleted)
	assert.Empty(t, s.Tasks())
}

func TestSyncDataReportsRepairs(t *testing.T) {
	s := newStore(t)

	g := models.NewGrant("Doomed")
	s.AddGrant(g)
	task := models.NewTask("Orphan")
	task.GrantID = g.ID
	s.AddTask(task)
	require.NoError(t, s.DeleteGrant(g.ID))

	h := NewQueryHandlers(s)
	_, out, err := h.SyncData(context.Background(), nil, SyncDataInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Cleaned)
	require.Len(t, out.Items, 1)
	assert.Contains(t, out.Items[0], "Orphan")
}

func TestSearchAllShortQuery(t *testing.T) {
	s := newStore(t)
	s.AddTask(models.NewTask("anything"))

	h := NewQueryHandlers(s)
	_, out, err := h.SearchAll(context.Background(), nil, SearchInput{Query: "a"})
	require.NoError(t, err)
	assert.Zero(t, out.Total)
}

func TestExportData(t *testing.T) {
	s := newStore(t)
	s.AddGrant(models.NewGrant("Exported"))

	h := NewQueryHandlers(s)
	_, out, err := h.ExportData(context.Background(), nil, ExportDataInput{})
	require.NoError(t, err)
	assert.Contains(t, out.JSON, "Exported")
	assert.Contains(t, out.JSON, "exportDate")
}
