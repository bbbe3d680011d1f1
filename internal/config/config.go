// Package config provides YAML-based configuration loading and board layout
// presets for Magic Set.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/magicset/internal/games/magicset/engine"
)

// MagicSetConfig contains all configuration for a Magic Set session.
type MagicSetConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Cascade CascadeConfig `yaml:"cascade"`
	Input   InputConfig   `yaml:"input"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig defines the match rule parameters.
type RulesConfig struct {
	Arity  int `yaml:"arity"`  // Marks that trigger a match check
	Colors int `yaml:"colors"` // Colors drawn when populating (1..3)
	Shapes int `yaml:"shapes"` // Shapes drawn when populating (1..3)
}

// CascadeConfig selects how tiles fall after a removal.
type CascadeConfig struct {
	Mode string `yaml:"mode"` // "in_place" or "respawn"
}

// InputConfig defines how intents are interpreted.
type InputConfig struct {
	DragSelect bool `yaml:"drag_select"` // Moving while selecting marks tiles
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate reports configurations no board can be built from.
func (c MagicSetConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board size %dx%d must be positive", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Rules.Arity < 2 {
		return fmt.Errorf("%w: arity %d must be at least 2", ErrInvalidConfig, c.Rules.Arity)
	}
	if c.Rules.Arity > c.Board.Width*c.Board.Height {
		return fmt.Errorf("%w: arity %d exceeds %d cells", ErrInvalidConfig, c.Rules.Arity, c.Board.Width*c.Board.Height)
	}
	if c.Rules.Colors < 1 || c.Rules.Colors > int(engine.ColorCount) {
		return fmt.Errorf("%w: colors %d outside 1..%d", ErrInvalidConfig, c.Rules.Colors, engine.ColorCount)
	}
	if c.Rules.Shapes < 1 || c.Rules.Shapes > int(engine.ShapeCount) {
		return fmt.Errorf("%w: shapes %d outside 1..%d", ErrInvalidConfig, c.Rules.Shapes, engine.ShapeCount)
	}
	if _, err := engine.ParseCascadeMode(c.Cascade.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Options converts the configuration into engine options.
func (c MagicSetConfig) Options(seed int64) (engine.Options, error) {
	if err := c.Validate(); err != nil {
		return engine.Options{}, err
	}
	mode, _ := engine.ParseCascadeMode(c.Cascade.Mode)
	return engine.Options{
		Width:      c.Board.Width,
		Height:     c.Board.Height,
		Arity:      c.Rules.Arity,
		Colors:     c.Rules.Colors,
		Shapes:     c.Rules.Shapes,
		Seed:       seed,
		Cascade:    mode,
		DragSelect: c.Input.DragSelect,
	}, nil
}
