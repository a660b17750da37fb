// ABOUTME: List view with entity tabs
// ABOUTME: Tables for grants, the task board, meetings, and todos
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("GRANTDESK"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	s.WriteString(m.renderTable())
	s.WriteString("\n")

	if m.statusMessage != "" {
		s.WriteString(statusStyle.Render(m.statusMessage))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Grants", "Tasks", "Meetings", "Todos"}
	var rendered []string

	for i, tab := range tabs {
		if EntityType(i) == m.entityType {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTable() string {
	switch m.entityType {
	case EntityGrants:
		return m.renderGrantsTable()
	case EntityTasks:
		return m.renderTasksTable()
	case EntityMeetings:
		return m.renderMeetingsTable()
	case EntityTodos:
		return m.renderTodosTable()
	}
	return ""
}

func (m Model) renderGrantsTable() string {
	grants := m.store.Grants()

	columns := []table.Column{
		{Title: "Title", Width: 34},
		{Title: "Funder", Width: 20},
		{Title: "Status", Width: 10},
		{Title: "Amount", Width: 14},
		{Title: "Aims", Width: 5},
	}

	var rows []table.Row
	for _, g := range grants {
		funder := g.FundingAgency
		if funder == "" {
			funder = "-"
		}
		rows = append(rows, table.Row{
			g.Title,
			funder,
			g.Status,
			centsToDisplay(g.Amount),
			fmt.Sprintf("%d", len(g.Aims)),
		})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderTasksTable() string {
	tasks := m.store.Tasks()

	columns := []table.Column{
		{Title: "Title", Width: 36},
		{Title: "Column", Width: 12},
		{Title: "Priority", Width: 9},
		{Title: "Due", Width: 11},
		{Title: "Assignee", Width: 14},
	}

	var rows []table.Row
	for _, t := range tasks {
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		assignee := t.Assignee
		if assignee == "" {
			assignee = "-"
		}
		rows = append(rows, table.Row{t.Title, t.Status, t.Priority, due, assignee})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderMeetingsTable() string {
	meetings := m.store.Meetings()

	columns := []table.Column{
		{Title: "Title", Width: 40},
		{Title: "Date", Width: 11},
		{Title: "Attendees", Width: 10},
	}

	var rows []table.Row
	for _, mt := range meetings {
		date := mt.Date
		if date == "" {
			date = "-"
		}
		rows = append(rows, table.Row{mt.Title, date, fmt.Sprintf("%d", len(mt.Attendees))})
	}

	return m.buildTable(columns, rows)
}

func (m Model) renderTodosTable() string {
	todos := m.store.Todos()

	columns := []table.Column{
		{Title: "Done", Width: 5},
		{Title: "Text", Width: 56},
	}

	var rows []table.Row
	for _, todo := range todos {
		check := "[ ]"
		if todo.Completed {
			check = "[x]"
		}
		rows = append(rows, table.Row{check, todo.Text})
	}

	return m.buildTable(columns, rows)
}

func (m Model) buildTable(columns []table.Column, rows []table.Row) string {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.height-10),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Tab: Switch tabs",
		"Enter: View details",
		"/: Search",
		"n: New",
		"D: Dashboard",
		"q: Quit",
	}
	if m.entityType == EntityTodos {
		help = append(help[:3], append([]string{"Space: Toggle"}, help[3:]...)...)
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "tab":
		m.entityType = (m.entityType + 1) % tabCount
		m.selectedRow = 0
		m.statusMessage = ""
	case "enter":
		if id := m.getSelectedID(); id != "" {
			m.viewMode = ViewDetail
			m.selectedID = id
		}
	case " ":
		if m.entityType == EntityTodos {
			if id := m.getSelectedID(); id != "" {
				_ = m.store.ToggleTodo(id)
			}
		}
	case "/":
		m.viewMode = ViewSearch
		m.searchInput.SetValue("")
		m.searchResults = m.engine.Search("")
		m.searchRow = 0
		m.searchInput.Focus()
		return m, nil
	case "n":
		if m.entityType == EntityTasks || m.entityType == EntityTodos {
			m.viewMode = ViewNewItem
			m.newInput.SetValue("")
			m.newInput.Focus()
		}
	case "d":
		if id := m.getSelectedID(); id != "" {
			m.viewMode = ViewConfirmDelete
			m.selectedID = id
		}
	case "D":
		m.viewMode = ViewDashboard
	}

	return m, nil
}

func (m Model) rowCount() int {
	switch m.entityType {
	case EntityGrants:
		return len(m.store.Grants())
	case EntityTasks:
		return len(m.store.Tasks())
	case EntityMeetings:
		return len(m.store.Meetings())
	case EntityTodos:
		return len(m.store.Todos())
	}
	return 0
}

func (m Model) getSelectedID() string {
	switch m.entityType {
	case EntityGrants:
		grants := m.store.Grants()
		if m.selectedRow < len(grants) {
			return grants[m.selectedRow].ID
		}
	case EntityTasks:
		tasks := m.store.Tasks()
		if m.selectedRow < len(tasks) {
			return tasks[m.selectedRow].ID
		}
	case EntityMeetings:
		meetings := m.store.Meetings()
		if m.selectedRow < len(meetings) {
			return meetings[m.selectedRow].ID
		}
	case EntityTodos:
		todos := m.store.Todos()
		if m.selectedRow < len(todos) {
			return todos[m.selectedRow].ID
		}
	}
	return ""
}

// centsToDisplay renders cents compactly for table cells.
func centsToDisplay(cents int64) string {
	if cents == 0 {
		return "-"
	}
	if cents >= 100000000 { // $1M
		return fmt.Sprintf("$%.1fM", float64(cents)/100000000)
	}
	if cents >= 100000 { // $1K
		return fmt.Sprintf("$%.0fK", float64(cents)/100000)
	}
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
