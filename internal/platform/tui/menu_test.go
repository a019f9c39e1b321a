package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/config"
)

func TestMenuItems(t *testing.T) {
	without := NewMenuModel(testSetup(t, false), testRuntime())
	with := NewMenuModel(testSetup(t, true), testRuntime())

	assert.Len(t, without.items, 4)
	assert.Len(t, with.items, 5)
	assert.Contains(t, with.View(), "High scores")
	assert.NotContains(t, without.View(), "High scores")
}

func TestMenuAdjustsRunConfig(t *testing.T) {
	m := NewMenuModel(testSetup(t, false), testRuntime())

	// Difficulty row: one step right is hard.
	next, _ := press(t, m, keyOf(tea.KeyDown), keyOf(tea.KeyRight))
	m = next.(MenuModel)
	assert.Equal(t, config.DifficultyHard, m.Preset())

	// Start level row wraps around the level count.
	next, _ = press(t, m, keyOf(tea.KeyDown), keyOf(tea.KeyRight), keyOf(tea.KeyRight), keyOf(tea.KeyRight))
	m = next.(MenuModel)

	cfg := m.RunConfig()
	assert.Equal(t, 2, cfg.Levels.Start)
	assert.Equal(t, 20, cfg.Wanderers.MaxAttempts)
	assert.True(t, cfg.Rules.InvalidKeyAdvancesTurn)
	assert.NoError(t, cfg.Validate())
	assert.Contains(t, m.View(), "Start level: < 2/2 >")
}

func TestMenuSelectPlay(t *testing.T) {
	m := NewMenuModel(testSetup(t, false), testRuntime())

	next, cmd := press(t, m, keyOf(tea.KeyEnter))

	require.True(t, next.(MenuModel).Selected())
	assert.True(t, isQuit(cmd))
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(testSetup(t, false), testRuntime())

	next, cmd := press(t, m, runeKey('q'))

	assert.True(t, next.(MenuModel).IsQuitting())
	assert.True(t, isQuit(cmd))
}

func TestMenuScoreboardNeedsStore(t *testing.T) {
	m := NewMenuModel(testSetup(t, false), testRuntime())
	next, _ := press(t, m, keyOf(tea.KeyTab))
	assert.False(t, next.(MenuModel).WantsScoreboard())

	m = NewMenuModel(testSetup(t, true), testRuntime())
	next, _ = press(t, m, keyOf(tea.KeyTab))
	assert.True(t, next.(MenuModel).WantsScoreboard())
}
