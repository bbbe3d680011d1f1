package engine

import "fmt"

// Intent is a decoded player input. Intents carry no payload.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentConfirm
	IntentCancel
)

// String returns the string representation of an intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveUp:
		return "MoveUp"
	case IntentMoveDown:
		return "MoveDown"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentConfirm:
		return "Confirm"
	case IntentCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// dir returns the cursor direction of a move intent.
func (i Intent) dir() (Dir, bool) {
	switch i {
	case IntentMoveUp:
		return DirUp, true
	case IntentMoveDown:
		return DirDown, true
	case IntentMoveLeft:
		return DirLeft, true
	case IntentMoveRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// EventKind is the type of an outbound notification.
type EventKind uint8

const (
	EventCursorMoved EventKind = iota
	EventTileMarked
	EventMarksCleared
	EventTileRemoved
	EventTileRelocated
	EventPhaseChanged
	EventMatchEvaluated
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventCursorMoved:
		return "CursorMoved"
	case EventTileMarked:
		return "TileMarked"
	case EventMarksCleared:
		return "MarksCleared"
	case EventTileRemoved:
		return "TileRemoved"
	case EventTileRelocated:
		return "TileRelocated"
	case EventPhaseChanged:
		return "PhaseChanged"
	case EventMatchEvaluated:
		return "MatchEvaluated"
	default:
		return "Unknown"
	}
}

// Event is a notification for rendering collaborators.
// Only the fields relevant to Kind are set:
//
//	CursorMoved    Pos
//	TileMarked     Pos, Tile
//	MarksCleared   -
//	TileRemoved    Pos, Tile, Attrs (Visible is false)
//	TileRelocated  From, Pos, Tile (the tile now at Pos)
//	PhaseChanged   Phase
//	MatchEvaluated Verdict
type Event struct {
	Kind    EventKind
	Pos     Coord
	From    Coord
	Tile    TileID
	Attrs   Attributes
	Phase   Phase
	Verdict Verdict
}

// String returns a compact description used by trace logs.
func (e Event) String() string {
	switch e.Kind {
	case EventCursorMoved:
		return fmt.Sprintf("%s %v", e.Kind, e.Pos)
	case EventTileMarked:
		return fmt.Sprintf("%s %v tile=%d", e.Kind, e.Pos, e.Tile)
	case EventTileRemoved:
		return fmt.Sprintf("%s %v tile=%d %s", e.Kind, e.Pos, e.Tile, e.Attrs.Code())
	case EventTileRelocated:
		return fmt.Sprintf("%s %v->%v tile=%d", e.Kind, e.From, e.Pos, e.Tile)
	case EventPhaseChanged:
		return fmt.Sprintf("%s %s", e.Kind, e.Phase)
	case EventMatchEvaluated:
		return fmt.Sprintf("%s color=%t shape=%t", e.Kind, e.Verdict.ColorMatch, e.Verdict.ShapeMatch)
	default:
		return e.Kind.String()
	}
}

// RemoveSignal asks the resolver to take a matched tile off the board.
type RemoveSignal struct {
	Tile TileID
	Pos  Coord
}

// Queue is a FIFO buffer drained once per tick.
type Queue[T any] struct {
	items []T
}

// Push appends an item.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int {
	return len(q.items)
}

// Drain returns all pending items in FIFO order and empties the queue.
func (q *Queue[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
