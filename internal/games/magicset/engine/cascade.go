package engine

import (
	"fmt"
	"strings"
)

// CascadeMode selects how the gravity pass moves a tile down.
type CascadeMode uint8

const (
	// CascadeInPlace relocates the same tile identity.
	CascadeInPlace CascadeMode = iota
	// CascadeRespawn despawns the mover and spawns a copy with a fresh identity,
	// so every (identity, position) pair is seen only once.
	CascadeRespawn
)

// String returns the string representation of a cascade mode.
func (m CascadeMode) String() string {
	switch m {
	case CascadeInPlace:
		return "in_place"
	case CascadeRespawn:
		return "respawn"
	default:
		return "unknown"
	}
}

// ParseCascadeMode converts a config string to a CascadeMode.
// An empty string selects CascadeInPlace.
func ParseCascadeMode(s string) (CascadeMode, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "_")) {
	case "", "in_place", "inplace":
		return CascadeInPlace, nil
	case "respawn":
		return CascadeRespawn, nil
	default:
		return CascadeInPlace, fmt.Errorf("engine: unknown cascade mode %q", s)
	}
}

// Move describes one tile dropping a row during a gravity pass.
type Move struct {
	From Coord
	To   Coord
	Old  TileID // identity before the move
	Tile TileID // identity after the move; equals Old for CascadeInPlace
}

// Gravity runs a single settling pass over the board.
//
// Each column is scanned bottom to top; an occupant with an empty cell directly
// below drops exactly one row. Because the scan climbs upwards, a whole stack
// above a one-row hole drops together, but no tile moves more than one row per
// pass. Repeated passes pack every column towards row 0 with order preserved.
// Empty cells at the top of a column are never refilled.
func Gravity(b *Board, t *Tiles, mode CascadeMode) []Move {
	var moves []Move
	w, h := b.Bounds()
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			from := C(x, y)
			below, ok := b.Below(from)
			if !ok || !b.IsEmpty(below) {
				continue
			}
			id, occupied := b.Occupant(from)
			if !occupied {
				continue
			}
			moves = append(moves, drop(b, t, mode, id, from, below))
		}
	}
	return moves
}

// drop moves one tile from one cell to the empty cell below it.
func drop(b *Board, t *Tiles, mode CascadeMode, id TileID, from, to Coord) Move {
	tile := t.Tile(id)
	if tile == nil {
		panic(fmt.Sprintf("engine: board cell %v holds unknown tile %d", from, id))
	}

	b.Clear(from)
	switch mode {
	case CascadeRespawn:
		attrs := tile.Attrs
		t.Despawn(id)
		fresh := t.Spawn(attrs, to)
		b.Set(to, fresh)
		return Move{From: from, To: to, Old: id, Tile: fresh}
	default:
		tile.Pos = to
		b.Set(to, id)
		return Move{From: from, To: to, Old: id, Tile: id}
	}
}

// IsSettled returns true if no occupied cell has an empty cell below it.
func IsSettled(b *Board) bool {
	w, h := b.Bounds()
	for x := 0; x < w; x++ {
		for y := 1; y < h; y++ {
			if !b.IsEmpty(C(x, y)) && b.IsEmpty(C(x, y-1)) {
				return false
			}
		}
	}
	return true
}
