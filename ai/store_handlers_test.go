// ABOUTME: Tests wiring the tool handlers to a real store
// ABOUTME: Verifies assistant mutations land in collections and sync aims
package ai

import (
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

func TestStoreHandlersCreateTask(t *testing.T) {
	s := newStore(t)
	h := StoreHandlers(s)

	detail, err := h.CreateTask(CreateTaskInput{Title: "Call program officer", Priority: "high"})
	require.NoError(t, err)
	assert.Contains(t, detail, "Call program officer")

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, models.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, models.TaskStatusTodo, tasks[0].Status)
}

func TestStoreHandlersCreateTaskRequiresTitle(t *testing.T) {
	s := newStore(t)
	h := StoreHandlers(s)

	_, err := h.CreateTask(CreateTaskInput{Title: "   "})
	require.Error(t, err)
	assert.Empty(t, s.Tasks())
}

func TestStoreHandlersUpdateTaskMergesFields(t *testing.T) {
	s := newStore(t)
	task := models.NewTask("Draft budget")
	task.Description = "keep me"
	s.AddTask(task)

	h := StoreHandlers(s)
	_, err := h.UpdateTask(UpdateTaskInput{ID: task.ID, Status: models.TaskStatusDone})
	require.NoError(t, err)

	got, err := s.TaskByID(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDone, got.Status)
	assert.Equal(t, "keep me", got.Description)
	assert.Equal(t, "Draft budget", got.Title)
}

func TestStoreHandlersUpdateCategorySyncsAim(t *testing.T) {
	s := newStore(t)

	g := models.NewGrant("RWJF Pilot")
	g.Aims = append(g.Aims, models.NewAim("Aim 3", "Outreach"))
	s.AddGrant(g)

	b := models.NewBudget(g.ID, 0)
	b.Categories = append(b.Categories, models.NewCategory("Aim 3 — Travel", 0))
	s.AddBudget(b)

	h := StoreHandlers(s)
	_, err := h.UpdateCategory(UpdateCategoryInput{
		BudgetID:   b.ID,
		CategoryID: b.Categories[0].ID,
		Allocated:  5000,
	})
	require.NoError(t, err)

	got, err := s.GrantByID(g.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got.Aims[0].BudgetAllocation)
	assert.Equal(t, int64(5000), s.Budgets()[0].Categories[0].Allocated)
}

func TestStoreHandlersDeleteMiniPool(t *testing.T) {
	s := newStore(t)

	b := models.NewBudget("", 0)
	cat := models.NewCategory("Supplies", 1000)
	cat.MiniPools = append(cat.MiniPools, models.NewMiniPool("Lab", 500))
	b.Categories = append(b.Categories, cat)
	s.AddBudget(b)

	h := StoreHandlers(s)
	poolID := b.Categories[0].MiniPools[0].ID
	_, err := h.DeleteMiniPool(DeleteMiniPoolInput{BudgetID: b.ID, PoolID: poolID})
	require.NoError(t, err)
	assert.Empty(t, s.Budgets()[0].Categories[0].MiniPools)

	_, err = h.DeleteMiniPool(DeleteMiniPoolInput{BudgetID: b.ID, PoolID: poolID})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSystemPromptReflectsState(t *testing.T) {
	s := newStore(t)
	g := models.NewGrant("K99 Transition")
	g.Aims = append(g.Aims, models.NewAim("Aim 1", "Mentored phase"))
	s.AddGrant(g)
	s.AddTask(models.NewTask("Annual report"))

	prompt := SystemPromptBuilder(s)()
	assert.Contains(t, prompt, "K99 Transition")
	assert.Contains(t, prompt, "Aim 1")
	assert.Contains(t, prompt, "Annual report")
}
