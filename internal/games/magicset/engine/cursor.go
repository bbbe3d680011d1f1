package engine

// Dir is a cursor direction.
type Dir uint8

const (
	DirUp Dir = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset of one step. Up increases Y.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Cursor is the player's position on the board.
// Moving past an edge wraps to the opposite edge on both axes.
type Cursor struct {
	pos Coord
	w   int
	h   int
}

// NewCursor places a cursor at the bottom-left corner of a w×h board.
func NewCursor(w, h int) Cursor {
	return Cursor{w: w, h: h}
}

// Pos returns the current cursor position.
func (c *Cursor) Pos() Coord {
	return c.pos
}

// Move steps the cursor one cell in the given direction and returns the new position.
func (c *Cursor) Move(d Dir) Coord {
	dx, dy := d.Delta()
	c.pos = C(wrap(c.pos.X+dx, c.w), wrap(c.pos.Y+dy, c.h))
	return c.pos
}

// MoveTo places the cursor at pos, wrapping coordinates into the board.
func (c *Cursor) MoveTo(pos Coord) Coord {
	c.pos = C(wrap(pos.X, c.w), wrap(pos.Y, c.h))
	return c.pos
}

// wrap maps v into [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
