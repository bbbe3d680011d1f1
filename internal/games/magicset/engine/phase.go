package engine

// Phase is the engine's stage in the select, evaluate, resolve cycle.
type Phase uint8

const (
	// PhaseIdle accepts cursor moves and marks; no tile is marked.
	PhaseIdle Phase = iota
	// PhaseSelecting accepts input while at least one tile is marked.
	PhaseSelecting
	// PhaseResolving drops all input until the resolver has run.
	PhaseResolving
)

// String returns the string representation of a phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelecting:
		return "selecting"
	case PhaseResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// AcceptsInput returns true if cursor moves and marks are honored in this phase.
func (p Phase) AcceptsInput() bool {
	return p != PhaseResolving
}
