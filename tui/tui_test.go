// ABOUTME: Tests for TUI model state transitions
// ABOUTME: Drives Update with key messages and checks view routing
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	client, cleanup := charm.NewTestClient(t)
	t.Cleanup(cleanup)
	s := store.New(client)
	require.NoError(t, s.Load())
	return NewModel(s)
}

func key(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestTabSwitchingWrapsAround(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, EntityGrants, m.entityType)

	m = update(t, m, key("tab"))
	assert.Equal(t, EntityTasks, m.entityType)
	m = update(t, m, key("tab"))
	assert.Equal(t, EntityMeetings, m.entityType)
	m = update(t, m, key("tab"))
	assert.Equal(t, EntityTodos, m.entityType)
	m = update(t, m, key("tab"))
	assert.Equal(t, EntityGrants, m.entityType)
}

func TestNavigationClampsToRows(t *testing.T) {
	m := newTestModel(t)
	m.store.AddGrant(models.NewGrant("One"))
	m.store.AddGrant(models.NewGrant("Two"))

	// Down past the last row stays on the last row
	m = update(t, m, key("down"))
	m = update(t, m, key("down"))
	m = update(t, m, key("down"))
	assert.Equal(t, 1, m.selectedRow)

	// Up past the first row stays on the first row
	m = update(t, m, key("up"))
	m = update(t, m, key("up"))
	m = update(t, m, key("up"))
	assert.Equal(t, 0, m.selectedRow)
}

func TestEnterOpensDetailView(t *testing.T) {
	m := newTestModel(t)
	g := models.NewGrant("R01 Renewal")
	m.store.AddGrant(g)

	m = update(t, m, key("enter"))
	assert.Equal(t, ViewDetail, m.viewMode)
	assert.Equal(t, g.ID, m.selectedID)
	assert.Contains(t, m.View(), "R01 Renewal")

	m = update(t, m, key("esc"))
	assert.Equal(t, ViewList, m.viewMode)
}

func TestEnterOnEmptyListStaysOnList(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, key("enter"))
	assert.Equal(t, ViewList, m.viewMode)
}

func TestSearchFiredMsgRunsQuery(t *testing.T) {
	m := newTestModel(t)
	m.store.AddGrant(models.NewGrant("Community Health Study"))

	m = update(t, m, key("/"))
	assert.Equal(t, ViewSearch, m.viewMode)

	m.searchInput.SetValue("health")
	m = update(t, m, searchFiredMsg{query: "health"})
	assert.Equal(t, 1, m.searchResults.Total)
	assert.Contains(t, m.View(), "Community Health Study")
}

func TestStaleSearchResultsDropped(t *testing.T) {
	m := newTestModel(t)
	m.store.AddGrant(models.NewGrant("Community Health Study"))

	m = update(t, m, key("/"))
	m.searchInput.SetValue("health equity")

	// Fired for an older query, so it must not overwrite state
	m = update(t, m, searchFiredMsg{query: "health"})
	assert.Equal(t, 0, m.searchResults.Total)
}

func TestSearchEscapeClearsQueryAndResults(t *testing.T) {
	m := newTestModel(t)
	m.store.AddGrant(models.NewGrant("Community Health Study"))

	m = update(t, m, key("/"))
	m.searchInput.SetValue("health")
	m = update(t, m, searchFiredMsg{query: "health"})
	m = update(t, m, key("down"))
	require.Equal(t, 1, m.searchResults.Total)

	m = update(t, m, key("esc"))
	assert.Equal(t, ViewList, m.viewMode)
	assert.Empty(t, m.searchInput.Value())
	assert.Zero(t, m.searchResults.Total)
	assert.Zero(t, m.searchRow)

	// Reopening starts from a blank search
	m = update(t, m, key("/"))
	assert.NotContains(t, m.View(), "Community Health Study")
}

func TestSearchEnterOpensGrantDetail(t *testing.T) {
	m := newTestModel(t)
	g := models.NewGrant("Community Health Study")
	m.store.AddGrant(g)

	m = update(t, m, key("/"))
	m.searchInput.SetValue("health")
	m = update(t, m, searchFiredMsg{query: "health"})

	m = update(t, m, key("enter"))
	assert.Equal(t, ViewDetail, m.viewMode)
	assert.Equal(t, EntityGrants, m.entityType)
	assert.Equal(t, g.ID, m.selectedID)
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := newTestModel(t)
	task := models.NewTask("Draft progress report")
	m.store.AddTask(task)
	m = update(t, m, key("tab")) // tasks tab

	m = update(t, m, key("d"))
	require.Equal(t, ViewConfirmDelete, m.viewMode)
	assert.Contains(t, m.View(), "Draft progress report")

	// Cancel returns to detail without deleting
	m = update(t, m, key("n"))
	assert.Equal(t, ViewDetail, m.viewMode)
	assert.Len(t, m.store.Tasks(), 1)

	m = update(t, m, key("d"))
	m = update(t, m, key("y"))
	assert.Equal(t, ViewList, m.viewMode)
	assert.Empty(t, m.store.Tasks())
	assert.Contains(t, m.statusMessage, "Deleted")
}

func TestNewTodoForm(t *testing.T) {
	m := newTestModel(t)
	m.entityType = EntityTodos

	m = update(t, m, key("n"))
	require.Equal(t, ViewNewItem, m.viewMode)

	m.newInput.SetValue("file the IRB amendment")
	m = update(t, m, key("enter"))
	assert.Equal(t, ViewList, m.viewMode)

	todos := m.store.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "file the IRB amendment", todos[0].Text)
}

func TestDashboardView(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, key("D"))
	assert.Equal(t, ViewDashboard, m.viewMode)
	assert.True(t, strings.Contains(m.View(), "Grant Portfolio"))

	m = update(t, m, key("esc"))
	assert.Equal(t, ViewList, m.viewMode)
}
