package engine

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int
	Codes  []string // Row-major from the bottom row, "" for empty cells
	IDs    []TileID // Row-major from the bottom row, NoTile for empty cells
	Cursor Coord
	Marks  []TileID
	Phase  Phase
	Stats  Stats
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	w, h := s.board.Bounds()
	snap := Snapshot{
		Tick:   s.tick,
		Width:  w,
		Height: h,
		Codes:  make([]string, w*h),
		IDs:    make([]TileID, w*h),
		Cursor: s.cursor.Pos(),
		Marks:  s.marks.IDs(),
		Phase:  s.phase,
		Stats:  s.stats,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			id, ok := s.board.Occupant(C(x, y))
			if !ok {
				continue
			}
			a, _ := s.tiles.Attributes(id)
			snap.Codes[y*w+x] = a.Code()
			snap.IDs[y*w+x] = id
		}
	}
	return snap
}

// Equal returns true if two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	if a.Tick != b.Tick || a.Width != b.Width || a.Height != b.Height ||
		a.Cursor != b.Cursor || a.Phase != b.Phase || a.Stats != b.Stats {
		return false
	}
	if len(a.Codes) != len(b.Codes) || len(a.Marks) != len(b.Marks) {
		return false
	}
	for i := range a.Codes {
		if a.Codes[i] != b.Codes[i] || a.IDs[i] != b.IDs[i] {
			return false
		}
	}
	for i := range a.Marks {
		if a.Marks[i] != b.Marks[i] {
			return false
		}
	}
	return true
}
