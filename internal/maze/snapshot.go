package maze

// Snapshot captures a session's dynamic state for determinism tests.
type Snapshot struct {
	Level     int
	Turns     int
	Player    Position
	Score     int
	Moves     int
	Wanderers []Position
	State     State
	Reason    EndReason
	Grid      []string
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Level:     s.number,
		Turns:     s.turns,
		Player:    s.player.pos,
		Score:     s.player.score,
		Moves:     s.player.moves,
		Wanderers: s.WandererPositions(),
		State:     s.state,
		Reason:    s.reason,
		Grid:      s.grid.Rows(),
	}
}
