package engine

import (
	"fmt"
	"slices"
)

// Tiles is the registry of live tiles keyed by TileID.
type Tiles struct {
	next  TileID
	tiles map[TileID]*Tile
}

// NewTiles creates an empty registry.
func NewTiles() *Tiles {
	return &Tiles{
		next:  1,
		tiles: make(map[TileID]*Tile),
	}
}

// Spawn registers a new tile at pos and returns its fresh identity.
// The caller is responsible for occupying pos on the board.
func (t *Tiles) Spawn(attrs Attributes, pos Coord) TileID {
	id := t.next
	t.next++
	t.tiles[id] = &Tile{ID: id, Attrs: attrs, Pos: pos}
	return id
}

// Contains returns true if id names a live tile.
func (t *Tiles) Contains(id TileID) bool {
	_, ok := t.tiles[id]
	return ok
}

// Attributes returns a copy of the tile's attributes.
func (t *Tiles) Attributes(id TileID) (Attributes, bool) {
	tile, ok := t.tiles[id]
	if !ok {
		return Attributes{}, false
	}
	return tile.Attrs, true
}

// Tile returns the live tile for in-place mutation, or nil if absent.
func (t *Tiles) Tile(id TileID) *Tile {
	return t.tiles[id]
}

// Despawn removes a tile from the registry.
// The caller must already have cleared its board occupancy.
// Despawning an absent tile panics.
func (t *Tiles) Despawn(id TileID) {
	if _, ok := t.tiles[id]; !ok {
		panic(fmt.Sprintf("engine: despawn of unknown tile %d", id))
	}
	delete(t.tiles, id)
}

// Len returns the number of live tiles.
func (t *Tiles) Len() int {
	return len(t.tiles)
}

// IDs returns the live tile identities in ascending order.
func (t *Tiles) IDs() []TileID {
	ids := make([]TileID, 0, len(t.tiles))
	for id := range t.tiles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
