package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Model is the Bubble Tea model for one run of the campaign.
type Model struct {
	setup      Setup
	ctrl       *maze.Controller
	seed       int64
	screen     *core.Screen
	keys       *KeyMapper
	scores     *ScoreboardModel // non-nil while the scoreboard is open
	clearToken int              // invalidates stale level-clear timers
	saved      bool             // run stored once it finished
	embedded   bool             // finished runs return to a menu instead of quitting
	backToMenu bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model and loads the first level.
func NewModel(setup Setup, rt core.RuntimeConfig) (Model, error) {
	rt = clampScreen(rt)
	seed := resolveSeed(rt.Seed)

	ctrl, err := setup.newController(seed)
	if err != nil {
		return Model{}, err
	}

	return Model{
		setup:  setup,
		ctrl:   ctrl,
		seed:   seed,
		screen: core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:   NewKeyMapper(),
	}, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case levelClearMsg:
		if msg.token == m.clearToken && m.ctrl.Phase() == maze.PhaseLevelCleared {
			m.advance()
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionExit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	switch phase := m.ctrl.Phase(); {
	case phase == maze.PhasePlaying:
		m.ctrl.Handle(maze.CommandFromAction(action))
		cmd := m.afterTurn()
		return m, cmd

	case phase == maze.PhaseLevelCleared:
		if action == core.ActionQuit {
			m.ctrl.Handle(maze.CmdQuit)
			cmd := m.afterTurn()
			return m, cmd
		}
		m.advance()
		return m, nil

	case phase.Finished():
		if action == core.ActionScoreboard && m.setup.Store != nil {
			sb := NewScoreboardModel(m.setup.Store, m.setup.Player, m.screen.Width(), m.screen.Height())
			sb.embedded = true
			m.scores = &sb
			return m, nil
		}
		if action == core.ActionConfirm || action == core.ActionQuit || action == core.ActionBack {
			return m.leave()
		}
	}

	return m, nil
}

// afterTurn stores finished runs and schedules the automatic advance.
func (m *Model) afterTurn() tea.Cmd {
	switch phase := m.ctrl.Phase(); {
	case phase == maze.PhaseLevelCleared:
		m.clearToken++
		if delay := m.clearDelay(); delay > 0 {
			return levelClearCmd(delay, m.clearToken)
		}
	case phase.Finished():
		m.finish()
	}
	return nil
}

// advance loads the next level. A failure leaves the controller aborted and
// the screen shows why.
func (m *Model) advance() {
	m.clearToken++
	_ = m.ctrl.Advance()
}

func (m *Model) finish() {
	if m.saved {
		return
	}
	m.saved = true
	m.setup.saveRun(m.ctrl.Report(), m.seed)
}

// leave ends the model: back to the menu when embedded, otherwise quit.
func (m Model) leave() (tea.Model, tea.Cmd) {
	if m.embedded {
		m.backToMenu = true
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	next, cmd := m.scores.Update(msg)
	sb := next.(ScoreboardModel)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}
	m.scores = &sb
	return m, cmd
}

func (m Model) clearDelay() time.Duration {
	return time.Duration(m.setup.Config.Display.LevelClearDelayMS) * time.Millisecond
}

// hint returns the footer line for the current phase.
func (m Model) hint() string {
	k := m.keys.Keys()
	switch phase := m.ctrl.Phase(); {
	case phase == maze.PhasePlaying:
		return hintLine(k.Up, k.Left, k.Down, k.Right, k.Quit)
	case phase == maze.PhaseLevelCleared:
		return "any key to continue  " + hintLine(k.Quit)
	case m.setup.Store != nil:
		return hintLine(k.Confirm, k.Scoreboard)
	default:
		return hintLine(k.Confirm)
	}
}

// render draws the current frame into the screen buffer.
func (m Model) render() {
	maze.Render(m.screen, m.ctrl.View(), maze.RenderOptions{
		DoubleWidth: m.setup.Config.Display.DoubleWidth,
		Hint:        m.hint(),
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.setup.ScreenshotDir == "" {
		return
	}
	m.render()

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.setup.ScreenshotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("maze_level%d_%s.txt", m.ctrl.Level(), timestamp)
	path := filepath.Join(m.setup.ScreenshotDir, filename)

	if err := os.WriteFile(path, []byte(RenderPlain(m.screen, "\n")), 0o600); err != nil {
		m.setup.logger().Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.setup.logger().Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.render()
	return RenderScreen(m.screen)
}

// Report returns the run summary.
func (m Model) Report() maze.Report {
	return m.ctrl.Report()
}

// Seed returns the seed the run was started with.
func (m Model) Seed() int64 {
	return m.seed
}

// BackToMenu returns true if the finished run was dismissed.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run plays one run in the terminal and returns its report. A level that
// fails to load is returned as the error once the screen closes.
func Run(setup Setup, rt core.RuntimeConfig) (maze.Report, error) {
	model, err := NewModel(setup, rt)
	if err != nil {
		return maze.Report{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return model.Report(), err
	}

	m, ok := final.(Model)
	if !ok {
		return model.Report(), nil
	}
	return m.Report(), m.ctrl.Err()
}
