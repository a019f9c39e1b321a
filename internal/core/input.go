package core

// Action represents a semantic front-end action, abstracted from physical key
// presses. The maze core turns movement actions into turn commands. The rest
// drive the platform screens.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionQuit              // Q - ends the run
	ActionConfirm           // Enter, Space - continue past a banner
	ActionBack              // Esc, B - leave the scoreboard
	ActionScoreboard        // Tab - open the scoreboard from an end screen
	ActionScreenshot        // Ctrl+S - dump the current frame
	ActionExit              // Ctrl+C - leave the program immediately
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
	case ActionQuit:
		return "Quit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionScreenshot:
		return "Screenshot"
	case ActionExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one of the four directions.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}
