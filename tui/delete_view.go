// ABOUTME: Delete confirmation view for TUI
// ABOUTME: Handles deletion of grants, tasks, meetings, and todos with confirmation dialog
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2).
			Width(60).
			Align(lipgloss.Center)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	confirmButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("9")).
				Padding(0, 2).
				MarginRight(2)

	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("8")).
				Padding(0, 2)
)

func (m Model) renderConfirmDeleteView() string {
	entityName, entityLabel, err := m.deleteTarget()
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	title := warningStyle.Render("⚠  DELETE CONFIRMATION  ⚠")
	message := fmt.Sprintf("Are you sure you want to delete this %s?", entityLabel)
	entityInfo := fmt.Sprintf("\n%s\n", entityName)
	warning := "\nThis action cannot be undone!"

	if m.entityType == EntityGrants {
		warning += "\nReferences in tasks and meetings stay until the next data sync."
	}

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		confirmButtonStyle.Render("Yes, Delete (y)"),
		cancelButtonStyle.Render("Cancel (n/esc)"),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		message,
		entityInfo,
		warning,
		"",
		buttons,
	)

	box := confirmBoxStyle.Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

func (m Model) deleteTarget() (name, label string, err error) {
	switch m.entityType {
	case EntityGrants:
		grant, err := m.store.GrantByID(m.selectedID)
		if err != nil {
			return "", "", err
		}
		return grant.Title, "grant", nil
	case EntityTasks:
		task, err := m.store.TaskByID(m.selectedID)
		if err != nil {
			return "", "", err
		}
		return task.Title, "task", nil
	case EntityMeetings:
		meeting, err := m.store.MeetingByID(m.selectedID)
		if err != nil {
			return "", "", err
		}
		return meeting.Title, "meeting", nil
	case EntityTodos:
		for _, todo := range m.store.Todos() {
			if todo.ID == m.selectedID {
				return todo.Text, "todo", nil
			}
		}
		return "", "", fmt.Errorf("todo not found")
	}
	return "", "", fmt.Errorf("unknown entity type")
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if err := m.performDelete(); err != nil {
			m.statusMessage = "Error: " + err.Error()
		} else {
			m.statusMessage = "Deleted"
			m.selectedID = ""
			if m.selectedRow > 0 {
				m.selectedRow--
			}
		}
		m.viewMode = ViewList
	case "n", "N", "esc":
		m.viewMode = ViewDetail
	}

	return m, nil
}

func (m Model) performDelete() error {
	switch m.entityType {
	case EntityGrants:
		return m.store.DeleteGrant(m.selectedID)
	case EntityTasks:
		return m.store.DeleteTask(m.selectedID)
	case EntityMeetings:
		return m.store.DeleteMeeting(m.selectedID)
	case EntityTodos:
		return m.store.DeleteTodo(m.selectedID)
	default:
		return fmt.Errorf("unknown entity type")
	}
}
