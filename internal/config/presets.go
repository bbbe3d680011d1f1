package config

import (
	"fmt"
	"strings"
)

// LayoutPreset represents a named board size.
type LayoutPreset string

const (
	LayoutClassic LayoutPreset = "classic" // 12×6
	LayoutCompact LayoutPreset = "compact" // 4×8
	LayoutTall    LayoutPreset = "tall"    // 12×8
	LayoutWide    LayoutPreset = "wide"    // 20×8
)

// Presets returns every preset in menu order.
func Presets() []LayoutPreset {
	return []LayoutPreset{LayoutClassic, LayoutCompact, LayoutTall, LayoutWide}
}

// Size returns the board dimensions of a preset.
func (p LayoutPreset) Size() (w, h int) {
	switch p {
	case LayoutCompact:
		return 4, 8
	case LayoutTall:
		return 12, 8
	case LayoutWide:
		return 20, 8
	default:
		return 12, 6
	}
}

// ParseLayoutPreset converts a name to a preset.
func ParseLayoutPreset(s string) (LayoutPreset, error) {
	p := LayoutPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return LayoutClassic, fmt.Errorf("config: unknown layout preset %q", s)
}

// ApplyPreset sets the board size of the config from a preset.
func ApplyPreset(cfg *MagicSetConfig, preset LayoutPreset) {
	cfg.Board.Width, cfg.Board.Height = preset.Size()
}
