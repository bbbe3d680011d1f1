package config

import (
	_ "embed"
)

//go:embed defaults/magicset.yaml
var defaultMagicSetYAML []byte

// DefaultMagicSetConfig returns the classic 12×6 configuration.
func DefaultMagicSetConfig() MagicSetConfig {
	return MagicSetConfig{
		Board: BoardConfig{
			Width:  12,
			Height: 6,
		},
		Rules: RulesConfig{
			Arity:  3,
			Colors: 3,
			Shapes: 3,
		},
		Cascade: CascadeConfig{
			Mode: "in_place",
		},
		Input: InputConfig{
			DragSelect: false,
		},
	}
}
