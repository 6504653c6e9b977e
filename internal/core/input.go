package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform translates key events to actions and hands them to
// the game one at a time, in arrival order, between simulation ticks.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - turn toward the left
	ActionRight        // D, Right arrow - turn toward the right
	ActionUp           // W, Up arrow - uphill nudge while stopped sideways
	ActionDown         // S, Down arrow - point straight downhill
	ActionJump         // Space - jump
	ActionPause        // P, Escape - pause/resume
	ActionReset        // R - restart the run
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
