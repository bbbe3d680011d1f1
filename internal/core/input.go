package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with high-level intents rather than raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - cursor up
	ActionDown           // S, J, Down arrow - cursor down
	ActionLeft           // A, H, Left arrow - cursor left
	ActionRight          // D, L, Right arrow - cursor right
	ActionConfirm        // Space, Enter - mark the tile under the cursor
	ActionBack           // X, Backspace - drop the current selection
	ActionRestart        // R - new board after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
// Actions are kept in arrival order; a repeated action is recorded once.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || f.Has(a) {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return out
}

// Empty returns true if no action was recorded.
func (f InputFrame) Empty() bool {
	return len(f.actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{actions: f.Actions()}
}
