package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/magicset/internal/core"
	"github.com/vovakirdan/magicset/internal/games/magicset"
	"github.com/vovakirdan/magicset/internal/games/magicset/layouts"
	"github.com/vovakirdan/magicset/internal/registry"
)

// MenuItem represents a selectable board in the menu: a registered variant
// or a puzzle layout.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	Layout      *layouts.Layout
}

// NewGame creates the game the item stands for.
func (it MenuItem) NewGame() (registry.Game, error) {
	if it.Layout != nil {
		return magicset.NewPuzzle(*it.Layout), nil
	}
	return registry.Create(it.GameID)
}

// menuItems lists registered variants followed by puzzle layouts.
func menuItems(layoutDir string) (variants, puzzles []MenuItem) {
	for _, g := range registry.List() {
		variants = append(variants, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}

	all, err := layouts.All(layoutDir)
	if err != nil {
		return variants, nil
	}
	for i := range all {
		l := all[i]
		puzzles = append(puzzles, MenuItem{
			GameID:      l.ID,
			Title:       l.Name,
			Description: fmt.Sprintf("%dx%d, sets of %d", l.Width, l.Height, l.Arity),
			Layout:      &l,
		})
	}
	return variants, puzzles
}

// MenuModel is the Bubble Tea model for the board picker.
type MenuModel struct {
	items        []MenuItem
	puzzleStart  int // Index of the first puzzle in items
	cursor       int
	scrollOffset int
	width        int
	height       int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	theme        Theme
	quitting     bool
	selected     *MenuItem // Set when user selects a board
	openStats    bool      // True if user pressed Tab for history
}

// NewMenuModel creates a new menu model. Puzzles are read from the embedded
// set and from layoutDir, which may be empty.
func NewMenuModel(cfg core.RuntimeConfig, layoutDir string) MenuModel {
	variants, puzzles := menuItems(layoutDir)
	items := append(variants, puzzles...)

	return MenuModel{
		items:       items,
		puzzleStart: len(variants),
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		theme:       GetTheme(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.updateScroll()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(m.items)-1)
		m.updateScroll()

	case MenuActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(m.items)-1)
		m.updateScroll()

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionStats:
		m.openStats = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems is the number of list rows that fit between header and footer.
func (m MenuModel) visibleItems() int {
	return max(m.height-11, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *MenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("M A G I C   S E T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Pick a board"), m.width))
	b.WriteString("\n\n")

	end := min(m.scrollOffset+m.visibleItems(), len(m.items))
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}

	for i := m.scrollOffset; i < end; i++ {
		if i == 0 {
			b.WriteString(centerText(m.theme.MenuSection.Render("Random boards"), m.width))
			b.WriteString("\n")
		}
		if i == m.puzzleStart {
			b.WriteString(centerText(m.theme.MenuSection.Render("Puzzles"), m.width))
			b.WriteString("\n")
		}

		item := m.items[i]
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		line := style.Render(cursor+item.Title) + "  " + m.theme.MenuDescription.Render(item.Description)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if end < len(m.items) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.HUDControls.Render("Up/Down: Navigate  |  Enter: Play  |  Tab: History  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user requested the history board.
func (m MenuModel) WantsStats() bool {
	return m.openStats
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item       *MenuItem
	Config     core.RuntimeConfig
	WantsStats bool
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, layoutDir string) (MenuResult, error) {
	model := NewMenuModel(cfg, layoutDir)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsStats():
		result.WantsStats = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.Item = m.Selected()
	}

	return result, nil
}
