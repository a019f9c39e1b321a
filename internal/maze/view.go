package maze

// View is the data a renderer needs for one frame. It is a consistent copy:
// actor positions always lie inside the grid once a level is loaded.
type View struct {
	Phase     Phase
	Level     int
	MaxLevels int
	LevelName string
	Grid      *Grid
	Player    Position
	Wanderers []Position
	Exit      Position
	Score     int
	Moves     int
	Turns     int
	Warnings  []Warning
	Reason    EndReason
	Err       error
}

// View captures the current frame data.
func (c *Controller) View() View {
	v := View{
		Phase:     c.phase,
		Level:     c.level,
		MaxLevels: c.opts.MaxLevels,
		Exit:      Unset,
		Err:       c.err,
	}
	if s := c.session; s != nil && c.phase != PhaseAborted {
		v.LevelName = s.name
		v.Grid = s.grid.Clone()
		v.Player = s.player.pos
		v.Wanderers = s.WandererPositions()
		v.Exit = s.exit
		v.Score = s.player.score
		v.Moves = s.player.moves
		v.Turns = s.turns
		v.Warnings = append([]Warning(nil), s.warnings...)
		v.Reason = s.reason
	}
	return v
}
