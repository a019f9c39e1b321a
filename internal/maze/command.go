package maze

import (
	"unicode"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Command is one input value consumed by the turn engine.
type Command int

const (
	CmdInvalid Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdQuit
)

// Direction returns the move direction of a movement command.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdUp:
		return DirUp, true
	case CmdDown:
		return DirDown, true
	case CmdLeft:
		return DirLeft, true
	case CmdRight:
		return DirRight, true
	default:
		return 0, false
	}
}

func (c Command) String() string {
	switch c {
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdQuit:
		return "quit"
	default:
		return "invalid"
	}
}

// CommandFromAction maps a front-end action onto a turn command. Anything
// that is neither a direction nor quit is CmdInvalid.
func CommandFromAction(a core.Action) Command {
	switch a {
	case core.ActionUp:
		return CmdUp
	case core.ActionDown:
		return CmdDown
	case core.ActionLeft:
		return CmdLeft
	case core.ActionRight:
		return CmdRight
	case core.ActionQuit:
		return CmdQuit
	default:
		return CmdInvalid
	}
}

// CommandFromKey maps a raw key to a command: W/A/S/D move, Q quits, case
// insensitive.
func CommandFromKey(r rune) Command {
	switch unicode.ToUpper(r) {
	case 'W':
		return CmdUp
	case 'S':
		return CmdDown
	case 'A':
		return CmdLeft
	case 'D':
		return CmdRight
	case 'Q':
		return CmdQuit
	default:
		return CmdInvalid
	}
}
