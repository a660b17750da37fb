// ABOUTME: Dashboard view showing portfolio rollups
// ABOUTME: Wraps the shared viz renderer in the TUI chrome
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/grantdesk/viz"
)

func (m Model) renderDashboardView() string {
	var s strings.Builder

	stats := viz.GenerateDashboardStats(m.store)
	s.WriteString(viz.RenderDashboard(stats))
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("Esc: Back • q: Quit"))

	return s.String()
}

func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.viewMode = ViewList
	}
	return m, nil
}
