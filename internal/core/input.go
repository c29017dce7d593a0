package core

// Action is a semantic input action, abstracted from physical key presses.
// Pointer clicks travel separately as Click values.
type Action int

const (
	ActionNone     Action = iota
	ActionConfirm         // Enter - start game / confirm time limit
	ActionPause           // P, Space - pause/unpause during play
	ActionBack            // M, Esc - return to menu (paused) or leave time screen
	ActionIncrease        // +, Right - raise time limit
	ActionDecrease        // -, Left - lower time limit
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionBack:
		return "Back"
	case ActionIncrease:
		return "Increase"
	case ActionDecrease:
		return "Decrease"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Click is a pointer-down event in screen coordinates.
type Click struct {
	X, Y int
}
