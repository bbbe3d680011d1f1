package engine

import "fmt"

// Coord is a board position. X grows to the right, Y grows upwards:
// row 0 is the bottom row that tiles fall towards.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Board maps every position of a fixed W×H grid to an optional tile.
// Cells are stored in row-major order: index = y*W + x.
type Board struct {
	w     int
	h     int
	cells []TileID
}

// NewBoard creates a board with all positions empty.
func NewBoard(w, h int) *Board {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("engine: invalid board size %dx%d", w, h))
	}
	return &Board{
		w:     w,
		h:     h,
		cells: make([]TileID, w*h),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

// Bounds returns the board dimensions.
func (b *Board) Bounds() (w, h int) {
	return b.w, b.h
}

// InBounds returns true if the coordinate lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.w && c.Y >= 0 && c.Y < b.h
}

// index converts a coordinate to a flat index and panics when it is off the board.
func (b *Board) index(c Coord) int {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("engine: position %v out of bounds %dx%d", c, b.w, b.h))
	}
	return c.Y*b.w + c.X
}

// Occupant returns the tile at the given position, if any.
func (b *Board) Occupant(c Coord) (TileID, bool) {
	id := b.cells[b.index(c)]
	return id, id != NoTile
}

// Set places a tile at the given position. Setting NoTile clears it.
func (b *Board) Set(c Coord, id TileID) {
	b.cells[b.index(c)] = id
}

// Clear empties the given position.
func (b *Board) Clear(c Coord) {
	b.cells[b.index(c)] = NoTile
}

// IsEmpty returns true if nothing occupies the position.
func (b *Board) IsEmpty(c Coord) bool {
	_, ok := b.Occupant(c)
	return !ok
}

// Below returns the position directly below c.
// Returns false on the bottom row; gravity does not wrap.
func (b *Board) Below(c Coord) (Coord, bool) {
	b.index(c)
	if c.Y == 0 {
		return Coord{}, false
	}
	return C(c.X, c.Y-1), true
}

// Occupied returns the number of occupied positions.
func (b *Board) Occupied() int {
	count := 0
	for _, id := range b.cells {
		if id != NoTile {
			count++
		}
	}
	return count
}

// AllCoords returns every position, column by column, bottom to top.
func (b *Board) AllCoords() []Coord {
	coords := make([]Coord, 0, b.w*b.h)
	for x := 0; x < b.w; x++ {
		for y := 0; y < b.h; y++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// Column returns the occupants of column x from bottom to top, NoTile for holes.
func (b *Board) Column(x int) []TileID {
	col := make([]TileID, b.h)
	for y := 0; y < b.h; y++ {
		col[y] = b.cells[b.index(C(x, y))]
	}
	return col
}
