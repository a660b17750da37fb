// ABOUTME: Tests for budget tree aggregation helpers
// ABOUTME: Verifies spend totals are derived from leaf expenses only
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBudget() *Budget {
	b := NewBudget("grant-1", 1000000)
	travel := NewCategory("Aim 1 — Travel", 300000)
	conf := NewMiniPool("Conferences", 200000)
	conf.Expenses = append(conf.Expenses,
		NewExpense("Flight to AHA", 45000, "2026-03-10"),
		NewExpense("Hotel", 30000, "2026-03-10"),
	)
	pending := NewExpense("Deposit for fall summit", 20000, "2026-09-01")
	pending.Spent = false
	conf.Expenses = append(conf.Expenses, pending)
	travel.MiniPools = append(travel.MiniPools, conf)

	supplies := NewCategory("Aim 2 — Supplies", 100000)
	lab := NewMiniPool("Lab", 100000)
	lab.Expenses = append(lab.Expenses, NewExpense("Reagents", 15000, "2026-02-01"))
	supplies.MiniPools = append(supplies.MiniPools, lab)

	b.Categories = append(b.Categories, travel, supplies)
	return b
}

func TestMiniPoolSpentExcludesUnspent(t *testing.T) {
	b := sampleBudget()
	pool := &b.Categories[0].MiniPools[0]

	assert.Equal(t, int64(75000), pool.Spent())
	assert.Equal(t, int64(95000), pool.Committed())
}

func TestBudgetSpentRecomputedFromLeaves(t *testing.T) {
	b := sampleBudget()

	assert.Equal(t, int64(90000), b.Spent())
	assert.Equal(t, int64(910000), b.Remaining())

	// Mutating a leaf changes every aggregate on the next read
	b.Categories[1].MiniPools[0].Expenses[0].Amount = 25000
	assert.Equal(t, int64(100000), b.Spent())
	assert.Equal(t, int64(25000), b.Categories[1].Spent())
}

func TestCategoryRemaining(t *testing.T) {
	b := sampleBudget()
	assert.Equal(t, int64(225000), b.Categories[0].Remaining())
	assert.Equal(t, int64(400000), b.Allocated())
}

func TestBudgetLookups(t *testing.T) {
	b := sampleBudget()

	cat := b.CategoryByID(b.Categories[1].ID)
	require.NotNil(t, cat)
	assert.Equal(t, "Aim 2 — Supplies", cat.Name)

	pool := b.MiniPoolByID(b.Categories[0].MiniPools[0].ID)
	require.NotNil(t, pool)
	assert.Equal(t, "Conferences", pool.Name)

	assert.Nil(t, b.CategoryByID("nope"))
	assert.Nil(t, b.MiniPoolByID("nope"))
}

func TestGrantAimLookups(t *testing.T) {
	g := NewGrant("R01 Renewal")
	g.Aims = append(g.Aims, NewAim("Aim 1", "Recruitment"), NewAim("Aim 2", "Analysis"))

	aim := g.AimByNumber("Aim 2")
	require.NotNil(t, aim)
	assert.Equal(t, "Analysis", aim.Title)

	byID := g.AimByID(g.Aims[0].ID)
	require.NotNil(t, byID)
	assert.Equal(t, "Aim 1", byID.Number)

	assert.Nil(t, g.AimByNumber("Aim 3"))
}
