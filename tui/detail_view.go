// ABOUTME: Detail view for grants, tasks, and meetings
// ABOUTME: Shows aims and budget rollups for the selected grant
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(20)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	sectionStyle = lipgloss.NewStyle().Bold(true)
)

func (m Model) renderDetailView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DETAIL VIEW"))
	s.WriteString("\n\n")

	switch m.entityType {
	case EntityGrants:
		s.WriteString(m.renderGrantDetail())
	case EntityTasks:
		s.WriteString(m.renderTaskDetail())
	case EntityMeetings:
		s.WriteString(m.renderMeetingDetail())
	case EntityTodos:
		s.WriteString(m.renderTodoDetail())
	}

	s.WriteString("\n\n")
	s.WriteString(m.renderDetailHelp())

	return s.String()
}

func (m Model) renderGrantDetail() string {
	grant, err := m.store.GrantByID(m.selectedID)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var s strings.Builder

	s.WriteString(m.renderField("Title", grant.Title))
	s.WriteString(m.renderField("Funder", grant.FundingAgency))
	s.WriteString(m.renderField("Status", grant.Status))
	s.WriteString(m.renderField("Amount", centsToDisplay(grant.Amount)))
	s.WriteString(m.renderField("PI", grant.PrincipalInvestigator))
	if grant.StartDate != "" || grant.EndDate != "" {
		s.WriteString(m.renderField("Period", grant.StartDate+" → "+grant.EndDate))
	}

	if len(grant.Aims) > 0 {
		s.WriteString("\n")
		s.WriteString(sectionStyle.Render("AIMS"))
		s.WriteString("\n")
		for _, aim := range grant.Aims {
			s.WriteString(fmt.Sprintf("  • %s: %s (%s, %d%%, %s)\n",
				aim.Number, aim.Title, aim.Status,
				aim.CompletionPercentage, centsToDisplay(aim.BudgetAllocation)))
			for _, milestone := range aim.Milestones {
				check := " "
				if milestone.Completed {
					check = "x"
				}
				s.WriteString(fmt.Sprintf("      [%s] %s\n", check, milestone.Title))
			}
		}
	}

	budgets := m.store.BudgetsForGrant(grant.ID)
	if len(budgets) > 0 {
		s.WriteString("\n")
		s.WriteString(sectionStyle.Render("BUDGETS"))
		s.WriteString("\n")
		for _, b := range budgets {
			s.WriteString(fmt.Sprintf("  • Total %s, %d categories\n",
				centsToDisplay(b.TotalBudget), len(b.Categories)))
		}
	}

	return s.String()
}

func (m Model) renderTaskDetail() string {
	task, err := m.store.TaskByID(m.selectedID)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var s strings.Builder
	s.WriteString(m.renderField("Title", task.Title))
	s.WriteString(m.renderField("Column", task.Status))
	s.WriteString(m.renderField("Priority", task.Priority))
	s.WriteString(m.renderField("Due", task.DueDate))
	s.WriteString(m.renderField("Assignee", task.Assignee))
	s.WriteString(m.renderField("Description", task.Description))

	if task.GrantID != "" {
		if g, err := m.store.GrantByID(task.GrantID); err == nil {
			s.WriteString(m.renderField("Grant", g.Title))
		} else {
			s.WriteString(m.renderField("Grant", "(missing: "+task.GrantID+")"))
		}
	}

	return s.String()
}

func (m Model) renderMeetingDetail() string {
	meeting, err := m.store.MeetingByID(m.selectedID)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	var s strings.Builder
	s.WriteString(m.renderField("Title", meeting.Title))
	s.WriteString(m.renderField("Date", meeting.Date))
	s.WriteString(m.renderField("Agenda", meeting.Agenda))

	if len(meeting.Attendees) > 0 {
		s.WriteString("\n")
		s.WriteString(sectionStyle.Render("ATTENDEES"))
		s.WriteString("\n")
		for _, a := range meeting.Attendees {
			s.WriteString(fmt.Sprintf("  • %s\n", a))
		}
	}

	return s.String()
}

func (m Model) renderTodoDetail() string {
	for _, todo := range m.store.Todos() {
		if todo.ID == m.selectedID {
			state := "open"
			if todo.Completed {
				state = "done"
			}
			return m.renderField("Todo", todo.Text) + m.renderField("State", state)
		}
	}
	return "Todo not found"
}

func (m Model) renderField(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s %s\n",
		fieldLabelStyle.Render(label+":"),
		fieldValueStyle.Render(value))
}

func (m Model) renderDetailHelp() string {
	help := []string{
		"Esc: Back",
		"d: Delete",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
	case "d":
		m.viewMode = ViewConfirmDelete
	}

	return m, nil
}
