package layouts

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/magicset/internal/games/magicset/engine"
)

// YAMLLayout represents the YAML structure of a layout file.
type YAMLLayout struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Arity       int               `yaml:"arity,omitempty"`
	Cascade     string            `yaml:"cascade,omitempty"`
	Rows        []string          `yaml:"rows"` // Top row first
	Metadata    map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a layout file.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Layout{}, fmt.Errorf("layout has no id")
	}

	cells, w, h, err := engine.ParseRows(yl.Rows)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", yl.ID, err)
	}

	arity := yl.Arity
	if arity == 0 {
		arity = engine.DefaultArity
	}
	mode, err := engine.ParseCascadeMode(yl.Cascade)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", yl.ID, err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Layout{
		ID:          yl.ID,
		Name:        name,
		Description: yl.Description,
		Arity:       arity,
		Cascade:     mode,
		Width:       w,
		Height:      h,
		Rows:        yl.Rows,
		Cells:       cells,
		Metadata:    yl.Metadata,
	}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
