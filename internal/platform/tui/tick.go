// Package tui provides the Bubble Tea integration for the maze game.
// It handles the terminal UI loop, input mapping, menus and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// levelClearMsg fires when the pause after a cleared level is over. The
// token ties it to the level that scheduled it.
type levelClearMsg struct {
	token int
}

// levelClearCmd returns a command that sends levelClearMsg after delay.
func levelClearCmd(delay time.Duration, token int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return levelClearMsg{token: token}
	})
}
