package core

// Action represents a player intent, abstracted from physical key presses.
// The platform maps keys to actions; the engine only ever sees actions.
type Action int

const (
	ActionNone   Action = iota
	ActionRotate        // W, Up arrow - rotate clockwise
	ActionLeft          // A, Left arrow - move one column left
	ActionRight         // D, Right arrow - move one column right
	ActionQuit          // Q, Ctrl+C - end the session immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotate:
		return "Rotate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
