// ABOUTME: Tests for the two-way aim/category allocation sync
// ABOUTME: Covers label matching, idempotence, and silent no-op behavior
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/grantdesk/models"
)

func seedGrantWithBudget(t *testing.T, s *Store) (grantID, budgetID, categoryID string) {
	t.Helper()

	g := models.NewGrant("RWJF Pilot")
	g.Aims = append(g.Aims, models.NewAim("Aim 3", "Community outreach"))
	s.AddGrant(g)

	b := models.NewBudget(g.ID, 1000000)
	b.Categories = append(b.Categories, models.NewCategory("Aim 3 — Travel", 0))
	s.AddBudget(b)

	return g.ID, b.ID, b.Categories[0].ID
}

func TestUpdateGrantAimBudget(t *testing.T) {
	s, _, cleanup := newTestStore(t)
	defer cleanup()

	grantID, _, _ := seedGrantWithBudget(t, s)
	s.UpdateGrantAimBudget(grantID, "Aim 3", 5000)

	g, err := s.GrantByID(grantID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), g.Aims[0].BudgetAllocation)

	budgets := s.Budgets()
	require.Len(t, budgets, 1)
	assert.Equal(t, int64(5000), budgets[0].Categories[0].Allocated)
}

func TestUpdateGrantAimBudgetIdempotent(t *testing.T) {
	s, _, cleanup := newTestStore(t)
	defer cleanup()

	grantID, _, _ := seedGrantWithBudget(t, s)
	s.UpdateGrantAimBudget(grantID, "Aim 3", 5000)

	g1, err := s.GrantByID(grantID)
	require.NoError(t, err)
	b1 := s.Budgets()[0]

	s.UpdateGrantAimBudget(grantID, "Aim 3", 5000)

	g2, err := s.GrantByID(grantID)
	require.NoError(t, err)
	b2 := s.Budgets()[0]

	assert.Equal(t, g1, g2)
	assert.Equal(t, b1, b2)
}

func TestUpdateGrantAimBudgetMatchesAllCategories(t *testing.T) {
	s, _, cleanup := newTestStore(t)
	defer cleanup()

	g := models.NewGrant("Multi-category")
	g.Aims = append(g.Aims, models.NewAim("Aim 1", "Everything"))
	s.AddGrant(g)

	b := models.NewBudget(g.ID, 0)
	b.Categories = append(b.Categories,
		models.NewCategory("Aim 1 — Travel", 100),
		models.NewCategory("Aim 1 — Supplies", 200),
		models.NewCategory("Aim 2 — Travel", 300),
		models.NewCategory("Overhead", 400),
	)
	s.AddBudget(b)

	s.UpdateGrantAimBudget(g.ID, "Aim 1", 9999)

	got := s.Budgets()[0]
	assert.Equal(t, int64(9999), got.Categories[0].Allocated)
	assert.Equal(t, int64(9999), got.Categories[1].Allocated)
	assert.Equal(t, int64(300), got.Categories[2].Allocated)
	assert.Equal(t, int64(400), got.Categories[3].Allocated)
}

func TestUpdateGrantAimBudgetSilentNoOp(t *testing.T) {
	s, _, cleanup := newTestStore(t)
	defer cleanup()

	grantID, _, _ := seedGrantWithBudget(t, s)
	before, err := s.GrantByID(grantID)
	require.NoError(t, err)

	// No such grant, no such aim: nothing changes, nothing panics
	s.UpdateGrantAimBudget("missing-grant", "Aim 1", 777)
	s.UpdateGrantAimBudget(grantID, "Aim 99", 777)

	after, err := s.GrantByID(grantID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateBudgetCategoryWithGrantSync(t *testing.T) {
	s, _, cleanup := newTestStore(t)
	defer cleanup()

	grantID, budgetID, categoryID := seedGrantWithBudget(t, s)
	s.UpdateBudgetCategoryWithGrantSync(budgetID, categoryID, 42000)

	b := s.Budgets()[0]
	assert.Equal(t, int64(42000), b.Categories[0].Allocated)

	g, err := s.GrantByID(grantID)
	require.NoError(t, err)
	assert.Equal(t, int64(42000), g.Aims[0].BudgetAllocation)
}

func TestUpdateBudgetCategoryWithoutAimLabel(t *testing.T) {
	s, _, cleanup := newTestStore(t)
	defer cleanup()

	g := models.NewGrant("Plain categories")
	g.Aims = append(g.Aims, models.NewAim("Aim 1", "Something"))
	s.AddGrant(g)

	b := models.NewBudget(g.ID, 0)
	b.Categories = append(b.Categories, models.NewCategory("Overhead", 0))
	s.AddBudget(b)

	s.UpdateBudgetCategoryWithGrantSync(b.ID, b.Categories[0].ID, 5555)

	// Category updates but no aim is touched
	assert.Equal(t, int64(5555), s.Budgets()[0].Categories[0].Allocated)
	got, err := s.GrantByID(g.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.Aims[0].BudgetAllocation)
}

func TestUpdateBudgetCategorySilentNoOp(t *testing.T) {
	s, _, cleanup := newTestStore(t)
	defer cleanup()

	_, budgetID, _ := seedGrantWithBudget(t, s)
	before := s.Budgets()[0]

	s.UpdateBudgetCategoryWithGrantSync("missing-budget", "whatever", 1)
	s.UpdateBudgetCategoryWithGrantSync(budgetID, "missing-category", 1)

	assert.Equal(t, before, s.Budgets()[0])
}

func TestAimLabelExtraction(t *testing.T) {
	cases := map[string]string{
		"Aim 3 — Travel":         "Aim 3",
		"Travel (Aim 12)":        "Aim 12",
		"Aimless spending":       "",
		"aims and objectives":    "",
		"Aim 1 and Aim 2 shared": "Aim 1", // first match wins
	}
	for name, want := range cases {
		assert.Equal(t, want, aimLabelRE.FindString(name), "category %q", name)
	}
}
