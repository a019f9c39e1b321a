package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

func TestSessionMenuGameMenu(t *testing.T) {
	setup := testSetup(t, true)
	var m tea.Model = NewSessionModel(setup, testRuntime())

	m, cmd := press(t, m, keyOf(tea.KeyEnter))
	s := m.(SessionModel)
	require.Equal(t, screenGame, s.screen)
	assert.False(t, isQuit(cmd), "starting a run must not end the program")
	assert.Contains(t, s.View(), "--- Maze Game --- Level: 1 ---")

	m, _ = press(t, m, runeKey('q'))
	s = m.(SessionModel)
	assert.Equal(t, maze.PhaseGameOver, s.game.Report().Phase)

	m, cmd = press(t, m, keyOf(tea.KeyEnter))
	s = m.(SessionModel)
	assert.False(t, isQuit(cmd))
	assert.Equal(t, screenMenu, s.screen)
	assert.Nil(t, s.game)
	assert.Contains(t, s.View(), "M A Z E")

	runs, err := setup.Store.RecentRuns("tester", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestSessionScoreboard(t *testing.T) {
	var m tea.Model = NewSessionModel(testSetup(t, true), testRuntime())

	m, cmd := press(t, m, keyOf(tea.KeyTab))
	s := m.(SessionModel)
	require.Equal(t, screenScores, s.screen)
	assert.False(t, isQuit(cmd))
	assert.Contains(t, s.View(), "No runs recorded yet.")

	m, _ = press(t, m, keyOf(tea.KeyEsc))
	assert.Equal(t, screenMenu, m.(SessionModel).screen)
}

func TestSessionQuitFromGame(t *testing.T) {
	var m tea.Model = NewSessionModel(testSetup(t, false), testRuntime())

	m, cmd := press(t, m, keyOf(tea.KeyEnter), keyOf(tea.KeyCtrlC))

	assert.True(t, isQuit(cmd))
	assert.Empty(t, m.View())
}

func TestSessionSeededRunsDiffer(t *testing.T) {
	var m tea.Model = NewSessionModel(testSetup(t, false), testRuntime())

	m, _ = press(t, m, keyOf(tea.KeyEnter))
	first := m.(SessionModel).game.Seed()
	m, _ = press(t, m, runeKey('q'), keyOf(tea.KeyEnter), keyOf(tea.KeyEnter))
	second := m.(SessionModel).game.Seed()

	assert.NotEqual(t, first, second)
}
