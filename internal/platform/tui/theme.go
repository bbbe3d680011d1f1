package tui

import (
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the configurable visual styles for the board and the menus.
type Theme struct {
	// Tile colors
	BlueTile   lipgloss.Style
	RedTile    lipgloss.Style
	YellowTile lipgloss.Style

	// HUD styles
	HUDControls lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuSection     lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		BlueTile:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		RedTile:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		YellowTile: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),

		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuSection:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.BlueTile = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)    // Neon cyan
	theme.RedTile = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)    // Neon pink
	theme.YellowTile = lipgloss.NewStyle().Foreground(lipgloss.Color("227")).Bold(true) // Neon yellow
	return theme
}

// PastelTheme returns a softer pastel theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.BlueTile = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	theme.RedTile = lipgloss.NewStyle().Foreground(lipgloss.Color("218"))
	theme.YellowTile = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	return theme
}

// MonochromeTheme returns a grayscale theme. Tiles are told apart by shape and brightness.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.BlueTile = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	theme.RedTile = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	theme.YellowTile = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	return theme
}

var themes = map[string]func() Theme{
	"default":    DefaultTheme,
	"neon":       NeonTheme,
	"pastel":     PastelTheme,
	"monochrome": MonochromeTheme,
}

// ThemeNames returns the names accepted by ThemeByName, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, bool) {
	f, ok := themes[name]
	if !ok {
		return Theme{}, false
	}
	return f(), true
}

var (
	themeMu      sync.RWMutex
	currentTheme = DefaultTheme()
)

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}
