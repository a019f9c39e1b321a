package tui

import (
	"path/filepath"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze/levels"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// twoLevelFS has no wanderers so runs are fully scripted by keys.
var twoLevelFS = fstest.MapFS{
	"level1.txt": {Data: []byte("######\n#P*E #\n######\n")},
	"level2.txt": {Data: []byte("#####\n#E P#\n#####\n")},
}

func testConfig() config.MazeConfig {
	cfg := config.DefaultMazeConfig()
	cfg.Levels.Count = 2
	cfg.Display.LevelClearDelayMS = 0
	return cfg
}

func testSetup(t *testing.T, withStore bool) Setup {
	t.Helper()
	s := Setup{
		Source: levels.NewFS(twoLevelFS, ""),
		Config: testConfig(),
		Player: "tester",
	}
	if withStore {
		store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
		require.NoError(t, err)
		t.Cleanup(func() { store.Close() })
		s.Store = store
	}
	return s
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 1}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func keyOf(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// press feeds keys to a model and returns the final model and the last
// command.
func press(t *testing.T, m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

// isQuit reports whether cmd is tea.Quit.
func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
