package engine

import (
	"fmt"
	"math/rand"
)

// DefaultArity is the number of marks that triggers a match check.
const DefaultArity = 3

// Options configures a session. Zero palette counts mean the full enumeration.
type Options struct {
	Width      int
	Height     int
	Arity      int
	Colors     int // Number of colors drawn by Populate (1..ColorCount)
	Shapes     int // Number of shapes drawn by Populate (1..ShapeCount)
	Seed       int64
	Cascade    CascadeMode
	DragSelect bool // Cursor moves mark tiles while selecting
}

// DefaultOptions returns the classic 12×6 board with arity 3.
func DefaultOptions() Options {
	return Options{
		Width:  12,
		Height: 6,
		Arity:  DefaultArity,
		Colors: int(ColorCount),
		Shapes: int(ShapeCount),
	}
}

// Validate reports options that no session can be built from.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("engine: board size %dx%d must be positive", o.Width, o.Height)
	}
	if o.Arity < 2 {
		return fmt.Errorf("engine: match arity %d must be at least 2", o.Arity)
	}
	if o.Arity > o.Width*o.Height {
		return fmt.Errorf("engine: match arity %d exceeds board capacity %d", o.Arity, o.Width*o.Height)
	}
	if o.Colors < 0 || o.Colors > int(ColorCount) {
		return fmt.Errorf("engine: color count %d outside 1..%d", o.Colors, ColorCount)
	}
	if o.Shapes < 0 || o.Shapes > int(ShapeCount) {
		return fmt.Errorf("engine: shape count %d outside 1..%d", o.Shapes, ShapeCount)
	}
	return nil
}

// Stats counts what happened during a session.
type Stats struct {
	Matches int // Checks that passed
	Misses  int // Checks that failed
	Removed int // Tiles taken off the board
}

// StepResult describes one tick.
type StepResult struct {
	Tick    uint64
	Events  []Event
	Verdict *Verdict // Set when a match check ran during the tick
	Removed int
	Moved   int
}

// Session is one game: the board, the tile registry, the cursor, the marks and
// the phase, plus the queues that connect them. A Session is not safe for
// concurrent use.
type Session struct {
	opts   Options
	board  *Board
	tiles  *Tiles
	cursor Cursor
	marks  MarkSet
	phase  Phase

	removals Queue[RemoveSignal]
	events   Queue[Event]

	tick    uint64
	stats   Stats
	verdict *Verdict
	removed int
	moved   int
}

// NewEmptySession creates a session whose board has no tiles yet.
// Invalid options panic; validate user input with Options.Validate first.
func NewEmptySession(opts Options) *Session {
	if opts.Colors == 0 {
		opts.Colors = int(ColorCount)
	}
	if opts.Shapes == 0 {
		opts.Shapes = int(ShapeCount)
	}
	if err := opts.Validate(); err != nil {
		panic(err.Error())
	}
	return &Session{
		opts:   opts,
		board:  NewBoard(opts.Width, opts.Height),
		tiles:  NewTiles(),
		cursor: NewCursor(opts.Width, opts.Height),
		marks:  NewMarkSet(opts.Arity),
		phase:  PhaseIdle,
	}
}

// NewSession creates a session and fills every cell with a random tile drawn
// from a generator seeded with opts.Seed.
func NewSession(opts Options) *Session {
	s := NewEmptySession(opts)
	s.Populate(rand.New(rand.NewSource(opts.Seed)))
	return s
}

// Populate fills every empty cell with a new tile of independently uniform
// color and shape. Neighbors are not kept distinct.
func (s *Session) Populate(rng *rand.Rand) {
	for _, pos := range s.board.AllCoords() {
		if !s.board.IsEmpty(pos) {
			continue
		}
		c := Color(rng.Intn(s.opts.Colors))
		sh := Shape(rng.Intn(s.opts.Shapes))
		s.Place(pos, A(c, sh))
	}
}

// Place spawns a tile at an empty cell during initial population.
func (s *Session) Place(pos Coord, attrs Attributes) TileID {
	if !s.board.IsEmpty(pos) {
		panic(fmt.Sprintf("engine: place on occupied cell %v", pos))
	}
	attrs.Visible = true
	id := s.tiles.Spawn(attrs, pos)
	s.board.Set(pos, id)
	return id
}

// Step runs one tick: every intent in order (duplicates of a kind dropped),
// then the resolver if a check fired, otherwise a settling pass.
// All notifications raised during the tick are returned and none are kept.
func (s *Session) Step(intents []Intent) StepResult {
	s.tick++
	s.verdict = nil
	s.removed = 0
	s.moved = 0

	var seen [IntentCancel + 1]bool
	for _, in := range intents {
		if in == IntentNone || in > IntentCancel || seen[in] {
			continue
		}
		seen[in] = true
		s.Apply(in)
	}

	if s.phase == PhaseResolving {
		s.resolve()
	} else {
		s.settle()
	}

	return StepResult{
		Tick:    s.tick,
		Events:  s.events.Drain(),
		Verdict: s.verdict,
		Removed: s.removed,
		Moved:   s.moved,
	}
}

// Apply handles a single intent. Input is dropped while resolving.
func (s *Session) Apply(in Intent) {
	if !s.phase.AcceptsInput() {
		return
	}

	if d, ok := in.dir(); ok {
		pos := s.cursor.Move(d)
		s.events.Push(Event{Kind: EventCursorMoved, Pos: pos})
		if s.opts.DragSelect && s.phase == PhaseSelecting {
			s.markAt(pos)
		}
		return
	}

	switch in {
	case IntentConfirm:
		s.markAt(s.cursor.Pos())
	case IntentCancel:
		s.cancel()
	}
}

// markAt marks the tile at pos if it is present, unmarked and there is room.
// Reaching the arity runs the match check immediately.
func (s *Session) markAt(pos Coord) {
	id, ok := s.board.Occupant(pos)
	if !ok || s.marks.Contains(id) || s.marks.Full() {
		return
	}

	s.marks.Add(id)
	s.events.Push(Event{Kind: EventTileMarked, Pos: pos, Tile: id})
	if s.phase == PhaseIdle {
		s.setPhase(PhaseSelecting)
	}
	if s.marks.Full() {
		s.evaluate()
	}
}

// evaluate checks the full mark set and always hands over to the resolver.
func (s *Session) evaluate() {
	ids := s.marks.IDs()
	attrs := make([]Attributes, len(ids))
	for i, id := range ids {
		a, ok := s.tiles.Attributes(id)
		if !ok {
			panic(fmt.Sprintf("engine: marked tile %d is not live", id))
		}
		attrs[i] = a
	}

	v := Evaluate(attrs)
	s.verdict = &v
	s.events.Push(Event{Kind: EventMatchEvaluated, Verdict: v})

	if v.Match() {
		s.stats.Matches++
		for _, id := range ids {
			s.removals.Push(RemoveSignal{Tile: id, Pos: s.tiles.Tile(id).Pos})
		}
	} else {
		s.stats.Misses++
	}
	s.setPhase(PhaseResolving)
}

// cancel drops the current selection.
func (s *Session) cancel() {
	if s.marks.Len() == 0 {
		return
	}
	s.marks.Clear()
	s.events.Push(Event{Kind: EventMarksCleared})
	s.setPhase(PhaseIdle)
}

// Resolve runs the resolver if a match check is pending.
// Returns false if the session was not resolving.
func (s *Session) Resolve() bool {
	if s.phase != PhaseResolving {
		return false
	}
	s.resolve()
	return true
}

// resolve removes signalled tiles, clears the selection, runs one gravity pass
// and returns to idle.
func (s *Session) resolve() {
	for _, sig := range s.removals.Drain() {
		s.remove(sig)
	}
	s.marks.Clear()
	s.events.Push(Event{Kind: EventMarksCleared})
	s.settle()
	s.setPhase(PhaseIdle)
}

// remove vacates the tile's cell and despawns it in one step.
// A signal for a tile that is already gone is ignored.
func (s *Session) remove(sig RemoveSignal) {
	tile := s.tiles.Tile(sig.Tile)
	if tile == nil {
		return
	}

	pos := tile.Pos
	if id, ok := s.board.Occupant(pos); ok && id == sig.Tile {
		s.board.Clear(pos)
	}
	tile.Attrs.Visible = false
	attrs := tile.Attrs
	s.tiles.Despawn(sig.Tile)

	s.stats.Removed++
	s.removed++
	s.events.Push(Event{Kind: EventTileRemoved, Pos: pos, Tile: sig.Tile, Attrs: attrs})
}

// Settle runs one gravity pass and returns the number of tiles that dropped.
func (s *Session) Settle() int {
	return s.settle()
}

func (s *Session) settle() int {
	moves := Gravity(s.board, s.tiles, s.opts.Cascade)
	for _, mv := range moves {
		if mv.Tile != mv.Old {
			s.marks.Rekey(mv.Old, mv.Tile)
		}
		s.events.Push(Event{Kind: EventTileRelocated, From: mv.From, Pos: mv.To, Tile: mv.Tile})
	}
	s.moved += len(moves)
	return len(moves)
}

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	s.phase = p
	s.events.Push(Event{Kind: EventPhaseChanged, Phase: p})
}

// Drain returns notifications raised by Apply, Resolve or Settle outside Step.
func (s *Session) Drain() []Event {
	return s.events.Drain()
}

// PendingRemovals returns the number of queued remove signals.
func (s *Session) PendingRemovals() int {
	return s.removals.Len()
}

// Options returns the options the session was created with.
func (s *Session) Options() Options {
	return s.opts
}

// Bounds returns the board dimensions.
func (s *Session) Bounds() (w, h int) {
	return s.board.Bounds()
}

// Occupant returns the tile at pos, if any.
func (s *Session) Occupant(pos Coord) (TileID, bool) {
	return s.board.Occupant(pos)
}

// Attributes returns the attributes of a live tile.
func (s *Session) Attributes(id TileID) (Attributes, bool) {
	return s.tiles.Attributes(id)
}

// TileAt returns the tile at pos, if any.
func (s *Session) TileAt(pos Coord) (Tile, bool) {
	id, ok := s.board.Occupant(pos)
	if !ok {
		return Tile{}, false
	}
	return *s.tiles.Tile(id), true
}

// Live reports whether id names a live tile.
func (s *Session) Live(id TileID) bool {
	return s.tiles.Contains(id)
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Cursor returns the cursor position.
func (s *Session) Cursor() Coord {
	return s.cursor.Pos()
}

// Marks returns the marked tiles in marking order.
func (s *Session) Marks() []TileID {
	return s.marks.IDs()
}

// IsMarked returns true if the tile at pos is marked.
func (s *Session) IsMarked(pos Coord) bool {
	id, ok := s.board.Occupant(pos)
	return ok && s.marks.Contains(id)
}

// Arity returns the match arity.
func (s *Session) Arity() int {
	return s.marks.Arity()
}

// TileCount returns the number of live tiles.
func (s *Session) TileCount() int {
	return s.tiles.Len()
}

// Cleared returns true once every tile has been removed.
func (s *Session) Cleared() bool {
	return s.tiles.Len() == 0
}

// IsSettled returns true when no tile is waiting to drop.
func (s *Session) IsSettled() bool {
	return IsSettled(s.board)
}

// HasAvailableMatch returns true if some arity-sized set of live tiles is a match.
func (s *Session) HasAvailableMatch() bool {
	attrs := make([]Attributes, 0, s.tiles.Len())
	for _, id := range s.tiles.IDs() {
		a, _ := s.tiles.Attributes(id)
		attrs = append(attrs, a)
	}
	return MatchExists(attrs, s.marks.Arity())
}

// Exhausted returns true once the board has settled and no match is left.
func (s *Session) Exhausted() bool {
	return s.phase != PhaseResolving && s.IsSettled() && !s.HasAvailableMatch()
}

// Stats returns the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}

// Tick returns the number of ticks stepped so far.
func (s *Session) Tick() uint64 {
	return s.tick
}
