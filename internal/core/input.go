package core

// Action represents a semantic game action, abstracted from physical key presses.
// The host maps raw keys to at most one Action per frame.
type Action int

const (
	ActionNone      Action = iota
	ActionFlap             // Space, Up, W - upward impulse
	ActionDashLeft         // Left, A - lateral nudge backwards
	ActionDashRight        // Right, D - lateral nudge forwards
	ActionConfirm          // P, Enter - play / play again
	ActionQuit             // Q, Esc - leave from the menu or the end screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionDashLeft:
		return "DashLeft"
	case ActionDashRight:
		return "DashRight"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
