package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/magicset/internal/core"
	"github.com/vovakirdan/magicset/internal/games/magicset"
	"github.com/vovakirdan/magicset/internal/registry"
	"github.com/vovakirdan/magicset/internal/storage"
)

// History board layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show variant list sidebar
	sidebarWidth       = 24  // Width of variant list sidebar
	maxSessions        = 100 // Max sessions to load
)

// StatsKeyMap defines the key bindings for the history board.
type StatsKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	ToggleOrder key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.ToggleOrder, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.ToggleOrder, k.Back, k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		ToggleOrder: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the session history board.
type StatsModel struct {
	variants      []registry.GameInfo
	variantCursor int
	store         *storage.Store
	sessions      []storage.Session
	totals        *storage.Totals
	byRecent      bool // false lists the best sessions first
	table         table.Model
	help          help.Model
	keys          StatsKeyMap
	width         int
	height        int
	quitting      bool
	goingBack     bool
	showSidebar   bool
}

// NewStatsModel creates a new history board model.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	variants := append(registry.List(), registry.GameInfo{ID: magicset.PuzzleID, Title: "Puzzles"})

	h := help.New()
	h.ShowAll = false

	m := StatsModel{
		variants:    variants,
		store:       store,
		keys:        DefaultStatsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.load()

	return m
}

// createTable creates a new table with appropriate columns.
func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Result", Width: 8},
		{Title: "Removed", Width: 8},
		{Title: "Sets", Width: 5},
		{Title: "Misses", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, totals and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// currentVariant returns the ID of the selected variant.
func (m StatsModel) currentVariant() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.variantCursor].ID
}

// load reads the sessions and totals of the selected variant.
func (m *StatsModel) load() {
	m.sessions = nil
	m.totals = nil

	if m.store != nil && len(m.variants) > 0 {
		variant := m.currentVariant()
		var err error
		if m.byRecent {
			m.sessions, err = m.store.RecentSessions(variant, maxSessions)
		} else {
			m.sessions, err = m.store.BestSessions(variant, maxSessions)
		}
		if err != nil {
			m.sessions = nil
		}
		if totals, err := m.store.Totals(variant); err == nil {
			m.totals = totals
		}
	}

	m.table.SetRows(sessionRows(m.sessions))
	m.table.GotoTop()
}

// sessionRows formats history rows for the table.
func sessionRows(sessions []storage.Session) []table.Row {
	rows := make([]table.Row, len(sessions))
	for i, s := range sessions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			s.Outcome,
			fmt.Sprintf("%d/%d", s.Removed, s.Removed+s.Remaining),
			fmt.Sprintf("%d", s.Matches),
			fmt.Sprintf("%d", s.Misses),
			formatDuration(s.DurationSecs),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the history board model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history board.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextVariant):
			if len(m.variants) > 0 {
				m.variantCursor = core.Wrap(m.variantCursor+1, len(m.variants))
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant):
			if len(m.variants) > 0 {
				m.variantCursor = core.Wrap(m.variantCursor-1, len(m.variants))
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.ToggleOrder):
			m.byRecent = !m.byRecent
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(sessionRows(m.sessions))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history board.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	order := "BEST GAMES"
	if m.byRecent {
		order = "RECENT GAMES"
	}
	title := order
	if len(m.variants) > 0 {
		title = fmt.Sprintf("%s - %s", order, m.variants[m.variantCursor].Title)
	}

	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderTotals(), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTotals summarizes the selected variant in one line.
func (m StatsModel) renderTotals() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	if m.totals == nil || m.totals.Games == 0 {
		return style.Render("No games yet")
	}
	t := m.totals
	return style.Render(fmt.Sprintf("%d games  |  %d cleared  %d stuck  %d quit  |  %d sets, %d misses  |  best %d tiles",
		t.Games, t.Cleared, t.Stuck, t.Quit, t.Matches, t.Misses, t.BestRemoved))
}

// renderWideLayout renders the board with a sidebar for variant selection.
func (m StatsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Boards\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, v := range m.variants {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.variantCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := v.Title
		maxLen := sidebarWidth - 6
		if len([]rune(name)) > maxLen {
			name = string([]rune(name)[:maxLen-1]) + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout shows the current variant with arrows above the table.
func (m StatsModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.variants) > 0 {
		tab := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1).
			Render(m.variants[m.variantCursor].Title)
		b.WriteString(centerText("< "+tab+" >", m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m StatsModel) renderTableContent() string {
	if len(m.sessions) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nFinish a board to see it here!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the history board.
// Returns true if user wants to go back to menu, false if quitting.
func RunStats(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewStatsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(StatsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
