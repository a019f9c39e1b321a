package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
)

// menuItem identifies a row of the start menu.
type menuItem int

const (
	itemPlay menuItem = iota
	itemDifficulty
	itemStartLevel
	itemScores
	itemQuit
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	setup          Setup
	items          []menuItem
	cursor         int
	difficulty     int // index into config.Presets
	startLevel     int
	best           int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	selected       bool // Set when user starts a run
	openScoreboard bool // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model.
func NewMenuModel(setup Setup, rt core.RuntimeConfig) MenuModel {
	rt = clampScreen(rt)
	items := []menuItem{itemPlay, itemDifficulty, itemStartLevel}
	if setup.Store != nil {
		items = append(items, itemScores)
	}
	items = append(items, itemQuit)

	m := MenuModel{
		setup:      setup,
		items:      items,
		difficulty: 1,
		startLevel: setup.Config.Levels.Start,
		width:      rt.ScreenW,
		height:     rt.ScreenH,
		keyMapper:  NewKeyMapper(),
	}
	if m.startLevel < 1 {
		m.startLevel = 1
	}
	if setup.Store != nil {
		if best, err := setup.Store.BestScore(setup.Player); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		m.adjust(-1)

	case MenuActionRight:
		m.adjust(1)

	case MenuActionSelect:
		switch m.items[m.cursor] {
		case itemPlay:
			m.selected = true
			return m, tea.Quit
		case itemScores:
			m.openScoreboard = true
			return m, tea.Quit
		case itemQuit:
			m.quitting = true
			return m, tea.Quit
		default:
			m.adjust(1)
		}

	case MenuActionScoreboard:
		if m.setup.Store != nil {
			m.openScoreboard = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// adjust cycles the value of the row under the cursor.
func (m *MenuModel) adjust(delta int) {
	switch m.items[m.cursor] {
	case itemDifficulty:
		n := len(config.Presets)
		m.difficulty = (m.difficulty + delta + n) % n
	case itemStartLevel:
		count := max(m.setup.Config.Levels.Count, 1)
		m.startLevel = (m.startLevel-1+delta+count)%count + 1
	}
}

func (m MenuModel) label(it menuItem) string {
	switch it {
	case itemPlay:
		return "Play"
	case itemDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", config.Presets[m.difficulty])
	case itemStartLevel:
		return fmt.Sprintf("Start level: < %d/%d >", m.startLevel, m.setup.Config.Levels.Count)
	case itemScores:
		return "High scores"
	default:
		return "Quit"
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  M A Z E  "), m.width))
	b.WriteString("\n\n")

	subtitle := "Reach the exit, grab the stars, dodge the X"
	if m.setup.Player != "" {
		subtitle = fmt.Sprintf("Welcome, %s", m.setup.Player)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n")
	if m.best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best score: %d", m.best), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, it := range m.items {
		line := "  " + m.label(it)
		if i == m.cursor {
			line = selectedStyle.Render("> " + m.label(it))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Change  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(helpStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns true if user started a run.
func (m MenuModel) Selected() bool {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Preset returns the chosen difficulty.
func (m MenuModel) Preset() config.DifficultyPreset {
	return config.Presets[m.difficulty]
}

// RunConfig returns the configuration with the menu choices applied.
func (m MenuModel) RunConfig() config.MazeConfig {
	cfg := m.setup.Config
	config.ApplyMazePreset(&cfg, m.Preset())
	cfg.Levels.Start = m.startLevel
	return cfg
}
