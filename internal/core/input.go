package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their own key events into actions so the game loop never
// sees a keycode.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow - shift the dropping piece one column left
	ActionMoveRight        // Right arrow - shift the dropping piece one column right
	ActionClear            // Delete - empty the board and drop the active piece
	ActionQuit             // Escape, window close, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionClear:
		return "Clear"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions drained from the input queue during one loop
// iteration, in the order they arrived.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets the frame for the next iteration, keeping the backing array.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
