package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinScenario(t *testing.T) {
	s := newTestSession(t,
		"#####",
		"#P E#",
		"#####",
	)
	e := NewEngine(DefaultRules(), nil)

	res := e.Turn(s, CmdRight)
	assert.True(t, res.Advanced)
	assert.True(t, res.PlayerMoved)
	assert.Equal(t, StateAwaitingInput, res.State)

	res = e.Turn(s, CmdRight)
	assert.Equal(t, StateWon, res.State)
	assert.Equal(t, ReasonReachedExit, res.Reason)
	assert.Equal(t, 2, s.Turns())
	assert.Equal(t, 2, s.Player().Moves())
}

func TestLossWhenWandererLandsOnMovedPlayer(t *testing.T) {
	s := newTestSession(t,
		"#####",
		"#P X#",
		"#####",
	)
	s.script(0, draw(DirLeft))
	e := NewEngine(DefaultRules(), nil)

	res := e.Turn(s, CmdRight)

	assert.True(t, res.PlayerMoved)
	assert.Equal(t, Position{X: 2, Y: 1}, s.Player().Position())
	assert.Equal(t, []Position{{X: 2, Y: 1}}, s.WandererPositions())
	assert.Equal(t, StateLost, res.State)
	assert.Equal(t, ReasonCaught, res.Reason)
}

func TestLossWhenPlayerWalksIntoStuckWanderer(t *testing.T) {
	s := newTestSession(t,
		"######",
		"#PX*E#",
		"######",
	)
	s.script(0, draw(DirRight))
	e := NewEngine(DefaultRules(), nil)

	res := e.Turn(s, CmdRight)

	assert.Equal(t, StateLost, res.State)
	assert.Equal(t, ReasonCaught, res.Reason)
}

func TestNoLossWhenPlayerAndWandererSwapCells(t *testing.T) {
	s := newTestSession(t,
		"#######",
		"# PX  #",
		"#E    #",
		"#######",
	)
	s.script(0, draw(DirLeft))
	e := NewEngine(DefaultRules(), nil)

	res := e.Turn(s, CmdRight)

	// Only post-move positions count: they passed each other.
	assert.Equal(t, Position{X: 3, Y: 1}, s.Player().Position())
	assert.Equal(t, []Position{{X: 2, Y: 1}}, s.WandererPositions())
	assert.Equal(t, StateAwaitingInput, res.State)
}

func TestCollisionBeatsExit(t *testing.T) {
	s := newTestSession(t,
		"#####",
		"#PEX#",
		"#####",
	)
	s.script(0, draw(DirLeft))
	e := NewEngine(DefaultRules(), nil)

	res := e.Turn(s, CmdRight)

	assert.Equal(t, Position{X: 2, Y: 1}, s.Player().Position())
	assert.Equal(t, StateLost, res.State)
}

func TestQuitSkipsWanderers(t *testing.T) {
	s := newTestSession(t,
		"#####",
		"#P X#",
		"#  E#",
		"#####",
	)
	r := s.script(0, draw(DirLeft))
	e := NewEngine(DefaultRules(), nil)

	res := e.Turn(s, CmdQuit)

	assert.False(t, res.Advanced)
	assert.Equal(t, StateLost, res.State)
	assert.Equal(t, ReasonQuit, res.Reason)
	assert.Equal(t, 0, r.calls)
	assert.Equal(t, 0, s.Turns())
}

func TestInvalidCommandIsNotATurn(t *testing.T) {
	s := newTestSession(t,
		"#####",
		"#P X#",
		"#  E#",
		"#####",
	)
	r := s.script(0, draw(DirDown))
	e := NewEngine(DefaultRules(), nil)
	before := s.Snapshot()

	res := e.Turn(s, CmdInvalid)

	assert.False(t, res.Advanced)
	assert.Equal(t, StateAwaitingInput, res.State)
	assert.Equal(t, 0, r.calls)
	assert.Equal(t, before, s.Snapshot())
}

func TestInvalidCommandAdvancesWhenConfigured(t *testing.T) {
	s := newTestSession(t,
		"#####",
		"#P X#",
		"#  E#",
		"#####",
	)
	s.script(0, draw(DirLeft))
	rules := DefaultRules()
	rules.InvalidAdvancesTurn = true
	e := NewEngine(rules, nil)

	res := e.Turn(s, CmdInvalid)

	assert.True(t, res.Advanced)
	assert.False(t, res.PlayerMoved)
	assert.Equal(t, Position{X: 1, Y: 1}, s.Player().Position())
	assert.Equal(t, []Position{{X: 2, Y: 1}}, s.WandererPositions())
	assert.Equal(t, 0, s.Player().Moves())
	assert.Equal(t, 1, s.Turns())
}

func TestBlockedPlayerStillResolvesTurn(t *testing.T) {
	s := newTestSession(t,
		"#####",
		"#P X#",
		"#  E#",
		"#####",
	)
	r := s.script(0, draw(DirDown))
	e := NewEngine(DefaultRules(), nil)

	res := e.Turn(s, CmdUp)

	assert.True(t, res.Advanced)
	assert.False(t, res.PlayerMoved)
	assert.Equal(t, 1, r.calls)
	assert.Equal(t, []Position{{X: 3, Y: 2}}, s.WandererPositions())
}

func TestTerminalStateIsSticky(t *testing.T) {
	s := newTestSession(t, "PE ")
	e := NewEngine(DefaultRules(), nil)

	require.Equal(t, StateWon, e.Turn(s, CmdRight).State)
	snap := s.Snapshot()

	res := e.Turn(s, CmdRight)
	assert.Equal(t, StateWon, res.State)
	assert.False(t, res.Advanced)
	assert.Equal(t, snap, s.Snapshot())

	res = e.Turn(s, CmdQuit)
	assert.Equal(t, StateWon, res.State, "quit after winning changes nothing")
	assert.Equal(t, ReasonReachedExit, s.Reason())
}

func TestMissingExitIsUnwinnable(t *testing.T) {
	s := newTestSession(t, "P  ")
	e := NewEngine(DefaultRules(), nil)

	for _, c := range []Command{CmdRight, CmdRight, CmdLeft, CmdLeft} {
		assert.Equal(t, StateAwaitingInput, e.Turn(s, c).State)
	}
	require.Len(t, s.Warnings(), 1)
	assert.Equal(t, WarnMissingExit, s.Warnings()[0].Kind)
}

func TestSameSeedSameRun(t *testing.T) {
	rows := []string{
		"##########",
		"#P   *   #",
		"# ## ### #",
		"#  X   X #",
		"# ###  # #",
		"#    X  E#",
		"##########",
	}
	cmds := []Command{CmdRight, CmdRight, CmdDown, CmdDown, CmdInvalid, CmdRight, CmdUp, CmdLeft}

	run := func() Snapshot {
		layout, err := Load(rows)
		require.NoError(t, err)
		s := NewSession(1, "det", layout, 4242)
		e := NewEngine(DefaultRules(), nil)
		for _, c := range cmds {
			e.Turn(s, c)
		}
		return s.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestWanderersStayInBounds(t *testing.T) {
	layout, err := Load([]string{
		"X   ",
		"  X ",
		" X  ",
		"P  X",
	})
	require.NoError(t, err)
	s := NewSession(1, "open", layout, 7)
	e := NewEngine(DefaultRules(), nil)

	for i := range 200 {
		e.Turn(s, CmdUp+Command(i%4))
		require.True(t, s.Grid().InBounds(s.Player().Position()))
		for _, p := range s.WandererPositions() {
			require.True(t, s.Grid().InBounds(p), "wanderer at %v", p)
		}
		if s.State().Terminal() {
			break
		}
	}
}
