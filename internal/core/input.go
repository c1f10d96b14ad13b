package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends translate their own key events into actions so the game logic never
// sees toolkit-specific key codes.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // steer up
	ActionDown           // steer down
	ActionLeft           // steer left
	ActionRight          // steer right
	ActionConfirm        // dismiss a dialog
	ActionPause          // pause/unpause the tick loop
	ActionQuit           // close the window
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
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsSteer reports whether the action is one of the four direction actions.
func (a Action) IsSteer() bool {
	return a >= ActionUp && a <= ActionRight
}
