// Package layouts loads fixed starting boards (puzzles) for Magic Set.
// This package depends on engine but engine does not depend on layouts.
package layouts

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/magicset/internal/games/magicset/engine"
)

//go:embed puzzles/*.yaml
var embedded embed.FS

// Layout is a complete puzzle definition.
type Layout struct {
	ID          string
	Name        string
	Description string
	Arity       int
	Cascade     engine.CascadeMode
	Width       int
	Height      int
	Rows        []string
	Cells       map[engine.Coord]engine.Attributes
	Metadata    map[string]string
	FilePath    string
}

// TileCount returns the number of tiles the layout starts with.
func (l *Layout) TileCount() int {
	return len(l.Cells)
}

// Options returns opts with the layout's size, arity and cascade mode applied.
func (l *Layout) Options(opts engine.Options) engine.Options {
	opts.Width = l.Width
	opts.Height = l.Height
	opts.Arity = l.Arity
	opts.Cascade = l.Cascade
	return opts
}

// NewSession creates a session whose board is this layout.
// Rule options not fixed by the layout (drag selection, seed) come from opts.
func (l *Layout) NewSession(opts engine.Options) (*engine.Session, error) {
	opts = l.Options(opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("layout %s: %w", l.ID, err)
	}
	s := engine.NewEmptySession(opts)
	for x := 0; x < l.Width; x++ {
		for y := 0; y < l.Height; y++ {
			pos := engine.C(x, y)
			if attrs, ok := l.Cells[pos]; ok {
				s.Place(pos, attrs)
			}
		}
	}
	return s, nil
}

// Loader handles loading layouts from a file tree.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader over a filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys, root: "."}
}

// NewDirLoader creates a loader for a directory on disk.
func NewDirLoader(dir string) *Loader {
	return &Loader{fsys: os.DirFS(dir), root: "."}
}

// Embedded returns a loader for the puzzles shipped with the binary.
func Embedded() *Loader {
	return &Loader{fsys: embedded, root: "puzzles"}
}

// LoadAll recursively scans and loads all layout files.
// Files that fail to parse are skipped. Returns layouts sorted by ID.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := fs.WalkDir(l.fsys, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(FormatExtensions(), strings.ToLower(path.Ext(p))) {
			return nil
		}

		layout, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		layouts = append(layouts, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking layouts %s: %w", l.root, err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})
	return layouts, nil
}

// LoadFile loads a single layout file relative to the loader's filesystem.
func (l *Loader) LoadFile(p string) (Layout, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	layout, err := ParseYAML(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	layout.FilePath = p
	return layout, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, layout := range layouts {
		if layout.ID == id {
			return layout, nil
		}
	}
	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// ListIDs returns all layout IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(layouts))
	for i, layout := range layouts {
		ids[i] = layout.ID
	}
	return ids, nil
}

// Find looks a layout up in dir, if it is not empty, and then in the embedded set.
// Entries in dir shadow embedded ones with the same ID.
func Find(id, dir string) (Layout, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			if layout, err := NewDirLoader(dir).LoadByID(id); err == nil {
				return layout, nil
			}
		}
	}
	return Embedded().LoadByID(id)
}

// All returns the embedded layouts merged with those found in dir, sorted by ID.
// A missing dir is not an error.
func All(dir string) ([]Layout, error) {
	layouts, err := Embedded().LoadAll()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return layouts, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return layouts, nil
	}

	user, err := NewDirLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]Layout, len(layouts)+len(user))
	for _, layout := range layouts {
		byID[layout.ID] = layout
	}
	for _, layout := range user {
		byID[layout.ID] = layout
	}

	merged := make([]Layout, 0, len(byID))
	for _, layout := range byID {
		merged = append(merged, layout)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].ID < merged[j].ID
	})
	return merged, nil
}
