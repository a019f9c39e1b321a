package maze

// enterRule decides whether an actor may step onto a cell that is in bounds
// and not a wall.
type enterRule func(Cell) bool

// playerMayEnter lets the player onto anything that is not a wall.
func playerMayEnter(c Cell) bool {
	return c != CellWall
}

// wandererMayEnter keeps wanderers on plain path; collectibles and unknown
// characters are off limits.
func wandererMayEnter(c Cell) bool {
	return c == CellPath
}

// resolveMove computes the cell one step from from in direction d and checks
// it against bounds, walls and the actor's rule. It never mutates anything.
func resolveMove(g *Grid, from Position, d Direction, may enterRule) (Position, bool) {
	next := from.Add(d)
	if !g.InBounds(next) {
		return from, false
	}
	c := g.At(next)
	if c == CellWall || !may(c) {
		return from, false
	}
	return next, true
}
