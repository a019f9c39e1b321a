package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// sessionScreen is what a session is currently showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> run -> menu, with the
// scoreboard reachable from the menu. It is the top-level model for SSH
// sessions and for the interactive menu.
type SessionModel struct {
	setup    Setup
	rt       core.RuntimeConfig
	screen   sessionScreen
	menu     MenuModel
	game     *Model
	scores   *ScoreboardModel
	runs     int
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(setup Setup, rt core.RuntimeConfig) SessionModel {
	rt = clampScreen(rt)
	return SessionModel{
		setup: setup,
		rt:    rt,
		menu:  NewMenuModel(setup, rt),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.rt.ScreenW = wsm.Width
		m.rt.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.Selected():
		setup := m.setup
		setup.Config = m.menu.RunConfig()

		rt := m.rt
		if rt.Seed != 0 {
			// Each run of a seeded session gets its own, still reproducible, seed.
			rt.Seed += int64(m.runs)
		}
		game, err := NewModel(setup, rt)
		if err != nil {
			setup.logger().Error("cannot start run", "error", err)
			m.menu = NewMenuModel(m.setup, m.rt)
			return m, nil
		}
		game.embedded = true
		m.game = &game
		m.runs++
		m.screen = screenGame
		return m, m.game.Init()

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.setup.Store, m.setup.Player, m.rt.ScreenW, m.rt.ScreenH)
		sb.embedded = true
		m.scores = &sb
		m.screen = screenScores
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = &game
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.game.BackToMenu():
		m.game = nil
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = &sb
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.scores.IsGoingBack():
		m.scores = nil
		m.toMenu()
		return m, nil
	}

	return m, cmd
}

// toMenu resets the menu, keeping nothing from the previous visit.
func (m *SessionModel) toMenu() {
	m.menu = NewMenuModel(m.setup, m.rt)
	m.screen = screenMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(setup Setup, rt core.RuntimeConfig) error {
	p := tea.NewProgram(NewSessionModel(setup, rt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
