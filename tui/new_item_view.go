// ABOUTME: Quick-create form for tasks and todos
// ABOUTME: Single text input, Enter saves, Esc cancels
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/grantdesk/models"
)

func (m Model) renderNewItemView() string {
	var s strings.Builder

	label := "NEW TASK"
	if m.entityType == EntityTodos {
		label = "NEW TODO"
	}

	s.WriteString(titleStyle.Render(label))
	s.WriteString("\n\n")
	s.WriteString(m.newInput.View())
	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render("Enter: Save • Esc: Cancel"))

	return s.String()
}

func (m Model) handleNewItemKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.newInput.Blur()
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.newInput.Value())
		if text == "" {
			return m, nil
		}
		switch m.entityType {
		case EntityTasks:
			task := models.NewTask(text)
			m.store.AddTask(task)
			m.statusMessage = "Task created: " + text
		case EntityTodos:
			m.store.AddTodo(text)
			m.statusMessage = "Todo added: " + text
		}
		m.viewMode = ViewList
		m.newInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.newInput, cmd = m.newInput.Update(msg)
	return m, cmd
}
