package tui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

func TestKeyInput(t *testing.T) {
	in := NewKeyInput(strings.NewReader("wA\nsDq?\x03"))

	var got []maze.Command
	for {
		cmd, err := in.Next()
		if err != nil {
			require.True(t, errors.Is(err, io.EOF))
			break
		}
		got = append(got, cmd)
	}

	assert.Equal(t, []maze.Command{
		maze.CmdUp, maze.CmdLeft, maze.CmdDown, maze.CmdRight,
		maze.CmdQuit, maze.CmdInvalid, maze.CmdQuit,
	}, got)
}

func readAll(t *testing.T, in *KeyInput) []maze.Command {
	t.Helper()
	var got []maze.Command
	for {
		cmd, err := in.Next()
		if err != nil {
			require.ErrorIs(t, err, io.EOF)
			return got
		}
		got = append(got, cmd)
	}
}

func TestKeyInputEscapeSequences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []maze.Command
	}{
		{"csi arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []maze.Command{maze.CmdUp, maze.CmdDown, maze.CmdRight, maze.CmdLeft}},
		{"ss3 arrows", "\x1bOA\x1bOD", []maze.Command{maze.CmdUp, maze.CmdLeft}},
		{"modified arrow", "\x1b[1;5C", []maze.Command{maze.CmdRight}},
		{"arrow between letters", "w\x1b[Cq", []maze.Command{maze.CmdUp, maze.CmdRight, maze.CmdQuit}},
		{"other sequence is one key", "\x1b[3~d", []maze.Command{maze.CmdInvalid, maze.CmdRight}},
		{"lone escape", "\x1b", []maze.Command{maze.CmdInvalid}},
		{"truncated sequence", "\x1b[", []maze.Command{maze.CmdInvalid}},
		{"raw enter is skipped", "\r\r\nd\r", []maze.Command{maze.CmdRight}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, readAll(t, NewKeyInput(strings.NewReader(tc.input))))
		})
	}
}

func TestPlayPlainArrowKeysUnderHardRules(t *testing.T) {
	setup := testSetup(t, false)
	setup.Config.Rules.InvalidKeyAdvancesTurn = true
	out := NewWriterRenderer(io.Discard, 80, 25, maze.RenderOptions{})

	report, err := PlayPlain(setup, 3, NewKeyInput(strings.NewReader("\x1b[C\r\x1b[C\r\r\x1b[D\x1b[D")), out)

	require.NoError(t, err)
	assert.Equal(t, maze.PhaseVictory, report.Phase)
	assert.Equal(t, 2, report.Moves, "each arrow press is exactly one move")
}

func TestWriterRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewWriterRenderer(&buf, 80, 25, maze.RenderOptions{})
	r.sep = "\r\n"

	c, err := maze.NewController(testSetup(t, false).Source, ControllerOptions(testConfig(), 1), nil)
	require.NoError(t, err)
	require.NoError(t, c.Start())
	require.NoError(t, r.Render(c.View()))

	out := buf.String()
	assert.Contains(t, out, "--- Maze Game --- Level: 1 ---\r\n")
	assert.Contains(t, out, " P*E")
	assert.NotContains(t, out, clearSequence)
	assert.Equal(t, 25, strings.Count(out, "\r\n"))
}

func TestPlayPlain(t *testing.T) {
	setup := testSetup(t, true)
	var buf bytes.Buffer
	out := NewWriterRenderer(&buf, 80, 25, maze.RenderOptions{DoubleWidth: true})

	report, err := PlayPlain(setup, 3, NewKeyInput(strings.NewReader("dd.aa")), out)

	require.NoError(t, err)
	assert.Equal(t, maze.PhaseVictory, report.Phase)
	assert.Contains(t, buf.String(), "Congratulations! You beat the game!")

	runs, err := setup.Store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, int64(3), runs[0].Seed)
}

func TestPlayPlainInputClosed(t *testing.T) {
	setup := testSetup(t, true)
	out := NewWriterRenderer(io.Discard, 80, 25, maze.RenderOptions{})

	report, err := PlayPlain(setup, 3, NewKeyInput(strings.NewReader("d")), out)

	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, maze.PhasePlaying, report.Phase)

	runs, err := setup.Store.TopRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs, "unfinished runs are not stored")
}

func TestPlayPlainBadConfig(t *testing.T) {
	setup := testSetup(t, false)
	setup.Config.Wanderers.MaxAttempts = 0

	_, err := PlayPlain(setup, 1, NewKeyInput(strings.NewReader("")), NewWriterRenderer(io.Discard, 10, 10, maze.RenderOptions{}))

	assert.ErrorIs(t, err, maze.ErrBadOptions)
}
