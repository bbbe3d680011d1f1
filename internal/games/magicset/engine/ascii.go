package engine

import (
	"fmt"
	"strings"
)

// RenderASCII returns the board as text, top row first.
// Each cell is its two-letter code, ".." when empty. A marked cell is wrapped
// in brackets and the cursor cell in angle brackets; other cells are padded
// with spaces so columns line up:
//
//	 BD  RC  YT
//	[BC]<..> YD
func RenderASCII(s *Session) string {
	w, h := s.Bounds()
	cursor := s.Cursor()

	var sb strings.Builder
	for y := h - 1; y >= 0; y-- {
		for x := 0; x < w; x++ {
			pos := C(x, y)
			code := ".."
			if t, ok := s.TileAt(pos); ok {
				code = t.Attrs.Code()
			}
			switch {
			case pos == cursor:
				sb.WriteString("<" + code + ">")
			case s.IsMarked(pos):
				sb.WriteString("[" + code + "]")
			default:
				sb.WriteString(" " + code + " ")
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseRows reads a board from text rows, top row first. Cells are separated
// by whitespace; "." or ".." is an empty cell. Every row must have the same
// number of cells.
func ParseRows(rows []string) (map[Coord]Attributes, int, int, error) {
	h := len(rows)
	if h == 0 {
		return nil, 0, 0, fmt.Errorf("engine: layout has no rows")
	}

	cells := make(map[Coord]Attributes)
	w := -1
	for i, row := range rows {
		fields := strings.Fields(row)
		if w < 0 {
			w = len(fields)
		}
		if len(fields) != w {
			return nil, 0, 0, fmt.Errorf("engine: layout row %d has %d cells, want %d", i+1, len(fields), w)
		}
		y := h - 1 - i
		for x, code := range fields {
			if code == "." || code == ".." {
				continue
			}
			attrs, err := ParseCode(code)
			if err != nil {
				return nil, 0, 0, fmt.Errorf("engine: layout row %d: %w", i+1, err)
			}
			cells[C(x, y)] = attrs
		}
	}
	if w == 0 {
		return nil, 0, 0, fmt.Errorf("engine: layout rows are empty")
	}
	return cells, w, h, nil
}

// NewSessionFromRows builds a session whose board is the given text layout.
// Width and height in opts are replaced by the layout's.
func NewSessionFromRows(opts Options, rows []string) (*Session, error) {
	cells, w, h, err := ParseRows(rows)
	if err != nil {
		return nil, err
	}
	opts.Width, opts.Height = w, h
	if opts.Arity == 0 {
		opts.Arity = DefaultArity
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := NewEmptySession(opts)
	for _, pos := range s.board.AllCoords() {
		if attrs, ok := cells[pos]; ok {
			s.Place(pos, attrs)
		}
	}
	return s, nil
}
