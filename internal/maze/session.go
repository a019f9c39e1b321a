package maze

import "math/rand"

// Rules are the tunable constants of turn resolution.
type Rules struct {
	CollectiblePoints   int  // score per collectible
	WanderAttempts      int  // random draws per wanderer per turn
	InvalidAdvancesTurn bool // unrecognized keys still move wanderers
}

// DefaultRules returns the classic rule set.
func DefaultRules() Rules {
	return Rules{
		CollectiblePoints: 10,
		WanderAttempts:    10,
	}
}

// State is the turn engine state of a session.
type State int

const (
	StateAwaitingInput State = iota
	StateResolving
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateResolving:
		return "resolving"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the level attempt.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// EndReason tells a caught player apart from one who quit.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonReachedExit
	ReasonCaught
	ReasonQuit
)

func (r EndReason) String() string {
	switch r {
	case ReasonReachedExit:
		return "reached_exit"
	case ReasonCaught:
		return "caught"
	case ReasonQuit:
		return "quit"
	default:
		return "none"
	}
}

// Session bundles everything one level attempt owns. It is created on level
// load and replaced wholesale by the next load; only the turn engine mutates
// it.
type Session struct {
	number    int
	name      string
	grid      *Grid
	player    Player
	wanderers []*Wanderer
	exit      Position
	warnings  []Warning
	state     State
	reason    EndReason
	turns     int
}

// NewSession builds a session from a loaded layout. Each wanderer gets its own
// random source, derived from seed in discovery order, so one seed fixes the
// whole level.
func NewSession(number int, name string, layout *Layout, seed int64) *Session {
	seeds := rand.New(rand.NewSource(seed))
	wanderers := make([]*Wanderer, len(layout.Wanderers))
	for i, p := range layout.Wanderers {
		wanderers[i] = NewSeededWanderer(p, seeds.Int63())
	}

	return &Session{
		number:    number,
		name:      name,
		grid:      layout.Grid,
		player:    NewPlayer(layout.PlayerStart),
		wanderers: wanderers,
		exit:      layout.Exit,
		warnings:  layout.Warnings,
		state:     StateAwaitingInput,
	}
}

// Number returns the 1-based level number.
func (s *Session) Number() int { return s.number }

// Name returns the level's source name, e.g. "level3.txt".
func (s *Session) Name() string { return s.name }

// Grid returns the level grid. Callers must not mutate it.
func (s *Session) Grid() *Grid { return s.grid }

// Player returns a copy of the player.
func (s *Session) Player() Player { return s.player }

// Exit returns the exit position, Unset when the level has none.
func (s *Session) Exit() Position { return s.exit }

// Warnings returns the non-fatal load problems of the level.
func (s *Session) Warnings() []Warning { return s.warnings }

// State returns the engine state.
func (s *Session) State() State { return s.state }

// Reason returns why the attempt ended, ReasonNone while it runs.
func (s *Session) Reason() EndReason { return s.reason }

// Turns returns the number of resolved turns.
func (s *Session) Turns() int { return s.turns }

// WandererPositions returns the wanderer positions in list order.
func (s *Session) WandererPositions() []Position {
	out := make([]Position, len(s.wanderers))
	for i, w := range s.wanderers {
		out[i] = w.Position()
	}
	return out
}

// carryProgress seeds the player's counters from a previous level.
func (s *Session) carryProgress(score, moves int) {
	s.player.score = score
	s.player.moves = moves
}

// finish moves the session into a terminal state exactly once.
func (s *Session) finish(state State, reason EndReason) {
	if s.state.Terminal() {
		return
	}
	s.state = state
	s.reason = reason
}
