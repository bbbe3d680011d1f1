package engine

import (
	"fmt"
	"slices"
)

// MarkSet holds the tiles selected for the next match check, in marking order.
// It never holds more than its arity.
type MarkSet struct {
	arity int
	ids   []TileID
}

// NewMarkSet creates an empty mark set bounded by arity.
func NewMarkSet(arity int) MarkSet {
	if arity < 1 {
		panic(fmt.Sprintf("engine: invalid match arity %d", arity))
	}
	return MarkSet{
		arity: arity,
		ids:   make([]TileID, 0, arity),
	}
}

// Arity returns the number of marks that triggers a match check.
func (m *MarkSet) Arity() int {
	return m.arity
}

// Len returns the number of marked tiles.
func (m *MarkSet) Len() int {
	return len(m.ids)
}

// Full returns true once arity tiles are marked.
func (m *MarkSet) Full() bool {
	return len(m.ids) >= m.arity
}

// Contains returns true if the tile is marked.
func (m *MarkSet) Contains(id TileID) bool {
	return slices.Contains(m.ids, id)
}

// Add marks a tile. Adding to a full set panics; callers check Full first.
func (m *MarkSet) Add(id TileID) {
	if m.Full() {
		panic(fmt.Sprintf("engine: mark set overflow (arity %d)", m.arity))
	}
	m.ids = append(m.ids, id)
}

// Rekey replaces a marked identity with another, keeping its position in order.
// Returns false if old was not marked.
func (m *MarkSet) Rekey(old, id TileID) bool {
	i := slices.Index(m.ids, old)
	if i < 0 {
		return false
	}
	m.ids[i] = id
	return true
}

// IDs returns a copy of the marked identities in marking order.
func (m *MarkSet) IDs() []TileID {
	return slices.Clone(m.ids)
}

// Clear removes every mark.
func (m *MarkSet) Clear() {
	m.ids = m.ids[:0]
}
