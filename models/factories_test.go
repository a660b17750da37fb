// ABOUTME: Tests for record factories
// ABOUTME: Validates generated ids, timestamps, and default field values
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoriesAssignIDs(t *testing.T) {
	assert.NotEmpty(t, NewGrant("G").ID)
	assert.NotEmpty(t, NewBudget("", 0).ID)
	assert.NotEmpty(t, NewTask("T").ID)
	assert.NotEmpty(t, NewAim("Aim 1", "A").ID)
	assert.NotEmpty(t, NewTodo("buy stamps").ID)
	assert.NotEqual(t, NewID(), NewID())
}

func TestNewGrantDefaults(t *testing.T) {
	g := NewGrant("RWJF Pilot")

	assert.Equal(t, GrantStatusPending, g.Status)
	assert.NotNil(t, g.Aims)
	assert.False(t, g.CreatedAt.IsZero())
	assert.Equal(t, g.CreatedAt, g.UpdatedAt)
}

func TestNewExpenseSpentByDefault(t *testing.T) {
	e := NewExpense("Poster printing", 4500, "2026-01-15")
	assert.True(t, e.Spent)
}

func TestNewTaskDefaults(t *testing.T) {
	task := NewTask("Submit progress report")
	assert.Equal(t, TaskStatusTodo, task.Status)
	assert.Equal(t, PriorityMedium, task.Priority)
}

func TestGrantJSONRoundTrip(t *testing.T) {
	g := NewGrant("R01 Renewal")
	g.Aims = append(g.Aims, NewAim("Aim 1", "Recruitment"))
	g.Aims[0].KPIs = append(g.Aims[0].KPIs, NewKPI("Enrolled", 200, "participants"))
	g.Aims[0].Milestones = append(g.Aims[0].Milestones, NewMilestone("IRB approval", "2026-04-01"))

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded Grant
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, g.ID, decoded.ID)
	require.Len(t, decoded.Aims, 1)
	assert.Equal(t, "Aim 1", decoded.Aims[0].Number)
	require.Len(t, decoded.Aims[0].KPIs, 1)
	assert.Equal(t, "Enrolled", decoded.Aims[0].KPIs[0].Name)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "light", s.Theme)
	assert.True(t, s.Notifications)
	assert.Nil(t, s.UserProfile)
}
