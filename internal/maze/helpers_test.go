package maze

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRand replays a fixed list of draws and counts how often it was asked.
type scriptedRand struct {
	draws []int
	calls int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.draws) == 0 {
		r.calls++
		return 0
	}
	v := r.draws[r.calls%len(r.draws)]
	r.calls++
	return v % n
}

// draw returns the Intn value that picks d.
func draw(d Direction) int {
	return int(d)
}

// newTestSession loads rows into a session with a fixed seed.
func newTestSession(t *testing.T, rows ...string) *Session {
	t.Helper()
	layout, err := Load(rows)
	require.NoError(t, err)
	return NewSession(1, "test", layout, 1)
}

// script replaces wanderer i's random source.
func (s *Session) script(i int, draws ...int) *scriptedRand {
	r := &scriptedRand{draws: draws}
	s.wanderers[i].rng = r
	return r
}

// memSource serves levels from memory. Missing levels fail like missing files.
type memSource map[int][]string

var errNoLevel = errors.New("no such level")

func (m memSource) Level(n int) (LevelData, error) {
	rows, ok := m[n]
	name := fmt.Sprintf("level%d.txt", n)
	if !ok {
		return LevelData{Number: n, Name: name}, errNoLevel
	}
	return LevelData{Number: n, Name: name, Rows: rows}, nil
}

// scriptedInput replays commands, then fails.
type scriptedInput struct {
	cmds []Command
	pos  int
}

var errInputClosed = errors.New("input closed")

func (in *scriptedInput) Next() (Command, error) {
	if in.pos >= len(in.cmds) {
		return CmdInvalid, errInputClosed
	}
	c := in.cmds[in.pos]
	in.pos++
	return c, nil
}

// recordingRenderer keeps every frame's phase and level.
type recordingRenderer struct {
	frames []View
}

func (r *recordingRenderer) Render(v View) error {
	r.frames = append(r.frames, v)
	return nil
}
