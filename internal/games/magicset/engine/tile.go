// Package engine provides the rule engine for the Magic Set tile-matching puzzle.
// This package is UI-agnostic and deterministic: the same seed and the same
// sequence of intents always produce the same board.
package engine

import (
	"fmt"
	"strings"
)

// TileID is the opaque handle of a live tile.
// IDs are assigned from 1 upwards and never reused within a session.
type TileID uint32

// NoTile is the zero TileID; it never names a live tile.
const NoTile TileID = 0

// Color is a tile color. The order of declaration is the sort order used by
// the match rule and carries no gameplay meaning.
type Color uint8

const (
	ColorBlue Color = iota
	ColorRed
	ColorYellow
	ColorCount // Sentinel value for iteration
)

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Char returns the single-letter code of the color used by layouts and ASCII dumps.
func (c Color) Char() rune {
	switch c {
	case ColorBlue:
		return 'B'
	case ColorRed:
		return 'R'
	case ColorYellow:
		return 'Y'
	default:
		return '?'
	}
}

// ParseColor converts a name or letter code to a Color.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "blue", "b":
		return ColorBlue, true
	case "red", "r":
		return ColorRed, true
	case "yellow", "y":
		return ColorYellow, true
	default:
		return ColorBlue, false
	}
}

// Shape is a tile shape, ordered like Color.
type Shape uint8

const (
	ShapeDiamond Shape = iota
	ShapeCircle
	ShapeTriangle
	ShapeCount
)

// String returns the string representation of a shape.
func (s Shape) String() string {
	switch s {
	case ShapeDiamond:
		return "diamond"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Char returns the single-letter code of the shape.
func (s Shape) Char() rune {
	switch s {
	case ShapeDiamond:
		return 'D'
	case ShapeCircle:
		return 'C'
	case ShapeTriangle:
		return 'T'
	default:
		return '?'
	}
}

// Glyph returns the symbol drawn for the shape on a terminal.
func (s Shape) Glyph() rune {
	switch s {
	case ShapeDiamond:
		return '◆'
	case ShapeCircle:
		return '●'
	case ShapeTriangle:
		return '▲'
	default:
		return '?'
	}
}

// ParseShape converts a name or letter code to a Shape.
func ParseShape(s string) (Shape, bool) {
	switch strings.ToLower(s) {
	case "diamond", "d":
		return ShapeDiamond, true
	case "circle", "c":
		return ShapeCircle, true
	case "triangle", "t":
		return ShapeTriangle, true
	default:
		return ShapeDiamond, false
	}
}

// Attributes are the per-tile properties the match rule looks at.
// Visible is false only for a tile caught in its removal transaction; renderers
// receiving that snapshot may animate it out.
type Attributes struct {
	Color   Color
	Shape   Shape
	Visible bool
}

// A returns visible attributes with the given color and shape.
func A(c Color, s Shape) Attributes {
	return Attributes{Color: c, Shape: s, Visible: true}
}

// Code returns the two-letter code of the tile, e.g. "BD" for a blue diamond.
func (a Attributes) Code() string {
	return string([]rune{a.Color.Char(), a.Shape.Char()})
}

// String returns a readable form like "blue diamond".
func (a Attributes) String() string {
	return fmt.Sprintf("%s %s", a.Color, a.Shape)
}

// ParseCode parses a two-letter tile code ("BD", "rc", ...).
func ParseCode(code string) (Attributes, error) {
	if len(code) != 2 {
		return Attributes{}, fmt.Errorf("engine: tile code %q must be two letters", code)
	}
	c, ok := ParseColor(code[:1])
	if !ok {
		return Attributes{}, fmt.Errorf("engine: unknown color in tile code %q", code)
	}
	s, ok := ParseShape(code[1:])
	if !ok {
		return Attributes{}, fmt.Errorf("engine: unknown shape in tile code %q", code)
	}
	return A(c, s), nil
}

// Tile is a live tile: its identity, attributes and current board position.
type Tile struct {
	ID    TileID
	Attrs Attributes
	Pos   Coord
}
