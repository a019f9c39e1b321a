package maze

import (
	"io"

	"github.com/charmbracelet/log"
)

// TurnResult reports what one command did to a session.
type TurnResult struct {
	Command     Command
	Advanced    bool // a full turn was resolved (wanderers had their go)
	PlayerMoved bool
	Collected   bool
	State       State
	Reason      EndReason
}

// Engine resolves turns against a session.
type Engine struct {
	rules  Rules
	logger *log.Logger
}

// NewEngine creates an engine with the given rules. A nil logger discards.
func NewEngine(rules Rules, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{rules: rules, logger: logger}
}

// Rules returns the engine's rule set.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Turn resolves one command:
//
//   - quit ends the attempt as lost immediately, wanderers do not move;
//   - a movement command tries the player move, then resolves the turn whether
//     or not the player moved;
//   - an invalid command is a no-op unless the rules say it still advances the
//     turn, in which case only the player stays put.
//
// Resolution moves every wanderer in list order, then checks that no wanderer
// shares the player's cell (lost) and that the player is on the exit (won),
// in that order, using post-move positions only. Once an attempt is terminal
// further commands change nothing.
func (e *Engine) Turn(s *Session, cmd Command) TurnResult {
	res := TurnResult{Command: cmd}
	if s.state.Terminal() {
		res.State, res.Reason = s.state, s.reason
		return res
	}

	switch cmd {
	case CmdQuit:
		s.finish(StateLost, ReasonQuit)
		e.logger.Debug("player quit", "level", s.number, "turn", s.turns)
		res.State, res.Reason = s.state, s.reason
		return res

	case CmdInvalid:
		if !e.rules.InvalidAdvancesTurn {
			res.State = s.state
			return res
		}

	default:
		d, _ := cmd.Direction()
		mv := s.player.Move(s.grid, d, e.rules.CollectiblePoints)
		res.PlayerMoved, res.Collected = mv.Moved, mv.Collected
	}

	s.state = StateResolving
	e.resolve(s)
	s.turns++

	res.Advanced = true
	res.State, res.Reason = s.state, s.reason
	e.logger.Debug("turn resolved",
		"level", s.number,
		"turn", s.turns,
		"command", cmd,
		"player", s.player.pos,
		"state", s.state,
	)
	return res
}

// resolve runs the wanderer phase and the terminal checks.
func (e *Engine) resolve(s *Session) {
	for _, w := range s.wanderers {
		w.Wander(s.grid, e.rules.WanderAttempts)
	}

	for _, w := range s.wanderers {
		if w.pos == s.player.pos {
			s.finish(StateLost, ReasonCaught)
			return
		}
	}
	if s.player.pos == s.exit {
		s.finish(StateWon, ReasonReachedExit)
		return
	}
	s.state = StateAwaitingInput
}
