// ABOUTME: Global search view with debounced queries
// ABOUTME: Results are grouped by category with keyboard navigation
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/grantdesk/search"
)

var (
	searchCategoryStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	searchSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Background(lipgloss.Color("235"))

	searchPathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func (m Model) renderSearchView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("SEARCH"))
	s.WriteString("\n\n")
	s.WriteString(m.searchInput.View())
	s.WriteString("\n\n")

	if m.searchResults.Total == 0 {
		if len(m.searchInput.Value()) >= 2 {
			s.WriteString("No results\n")
		} else {
			s.WriteString(helpStyle.Render("Type at least 2 characters"))
			s.WriteString("\n")
		}
	}

	row := 0
	for _, category := range m.searchResults.Categories {
		s.WriteString(searchCategoryStyle.Render(
			fmt.Sprintf("%s (%d)", category.Category, category.Total)))
		s.WriteString("\n")
		for _, item := range category.Items {
			line := "  " + item.Title
			if item.Path != "" {
				line += "  " + searchPathStyle.Render(item.Path)
			}
			if row == m.searchRow {
				line = searchSelectedStyle.Render(line)
			}
			s.WriteString(line)
			s.WriteString("\n")
			row++
		}
		if category.Total > len(category.Items) {
			s.WriteString(searchPathStyle.Render(
				fmt.Sprintf("  … and %d more", category.Total-len(category.Items))))
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("↑/↓: Navigate • Enter: Open • Esc: Back"))

	return s.String()
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.searchResults = search.Results{}
		m.searchRow = 0
		m.debouncer.Cancel()
		return m, nil
	case "up":
		if m.searchRow > 0 {
			m.searchRow--
		}
		return m, nil
	case "down":
		if m.searchRow < m.visibleResultCount()-1 {
			m.searchRow++
		}
		return m, nil
	case "enter":
		if id, entity, ok := m.selectedSearchResult(); ok {
			m.viewMode = ViewDetail
			m.selectedID = id
			m.entityType = entity
			m.searchInput.Blur()
			m.debouncer.Cancel()
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	after := m.searchInput.Value()

	if after != before {
		notify := m.notify
		query := after
		m.debouncer.Debounce(func() {
			if send := *notify; send != nil {
				send(searchFiredMsg{query: query})
			}
		})
	}

	return m, cmd
}

func (m Model) visibleResultCount() int {
	count := 0
	for _, category := range m.searchResults.Categories {
		count += len(category.Items)
	}
	return count
}

// selectedSearchResult maps the flat cursor position back to a result and the
// tab its detail view lives on.
func (m Model) selectedSearchResult() (string, EntityType, bool) {
	row := 0
	for _, category := range m.searchResults.Categories {
		for _, item := range category.Items {
			if row == m.searchRow {
				entity, ok := categoryEntity(category.Category)
				if !ok {
					return "", 0, false
				}
				return item.ID, entity, true
			}
			row++
		}
	}
	return "", 0, false
}

// categoryEntity maps search categories to tabs. Categories without a detail
// view (documents, payments, templates) stay in the search view.
func categoryEntity(category string) (EntityType, bool) {
	switch category {
	case "grants":
		return EntityGrants, true
	case "tasks":
		return EntityTasks, true
	case "meetings":
		return EntityMeetings, true
	}
	return 0, false
}
