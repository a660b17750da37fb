// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Provides interactive full-screen interface over the grant store
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/grantdesk/search"
	"github.com/harperreed/grantdesk/store"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
	ViewSearch
	ViewNewItem
	ViewConfirmDelete
	ViewDashboard
)

// EntityType represents the tab being viewed
type EntityType int

const (
	EntityGrants EntityType = iota
	EntityTasks
	EntityMeetings
	EntityTodos
)

const tabCount = 4

// Model is the main bubbletea model
type Model struct {
	store  *store.Store
	engine *search.Engine

	viewMode   ViewMode
	entityType EntityType

	// List view state
	selectedRow int

	// Detail view state
	selectedID string

	// Search view state
	searchInput   textinput.Model
	searchResults search.Results
	searchRow     int
	debouncer     *search.Debouncer
	notify        *func(tea.Msg)

	// New item form state
	newInput textinput.Model

	// Status line after an action
	statusMessage string

	// UI state
	width  int
	height int
}

// searchFiredMsg arrives after the debounce interval elapses without further
// keystrokes.
type searchFiredMsg struct {
	query string
}

// NewModel creates a new TUI model
func NewModel(s *store.Store) Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search everything..."
	searchInput.CharLimit = 100

	newInput := textinput.New()
	newInput.CharLimit = 200

	notify := new(func(tea.Msg))

	return Model{
		store:       s,
		engine:      search.NewEngine(s),
		viewMode:    ViewList,
		entityType:  EntityGrants,
		searchInput: searchInput,
		newInput:    newInput,
		debouncer:   search.NewDebouncer(search.DefaultDebounce),
		notify:      notify,
		width:       80,
		height:      24,
	}
}

// Run starts the TUI program.
func Run(s *store.Store) error {
	m := NewModel(s)
	p := tea.NewProgram(m, tea.WithAltScreen())
	*m.notify = func(msg tea.Msg) { p.Send(msg) }
	defer m.debouncer.Cancel()

	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case searchFiredMsg:
		// Stale results from an earlier keystroke are dropped
		if msg.query == m.searchInput.Value() {
			m.searchResults = m.engine.Search(msg.query)
			m.searchRow = 0
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewSearch:
		return m.renderSearchView()
	case ViewNewItem:
		return m.renderNewItemView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	case ViewDashboard:
		return m.renderDashboardView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Text-entry views own the rest of the keyboard
	switch m.viewMode {
	case ViewSearch:
		return m.handleSearchKeys(msg)
	case ViewNewItem:
		return m.handleNewItemKeys(msg)
	}

	if msg.String() == "q" {
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ViewDashboard:
		return m.handleDashboardKeys(msg)
	}

	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)
