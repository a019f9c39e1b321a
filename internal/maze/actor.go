package maze

import "math/rand"

// Rand is the randomness a wanderer draws directions from.
// *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Actor is the shared record of every entity on the grid.
type Actor struct {
	pos    Position
	marker rune
}

// Position returns the actor's current cell.
func (a Actor) Position() Position {
	return a.pos
}

// Marker returns the display character of the actor.
func (a Actor) Marker() rune {
	return a.marker
}

// Player is the actor driven by input commands.
type Player struct {
	Actor
	score int
	moves int
}

// NewPlayer places a player with zero score and moves.
func NewPlayer(start Position) Player {
	return Player{Actor: Actor{pos: start, marker: MarkerPlayer}}
}

// Score returns accumulated collectible points.
func (p Player) Score() int {
	return p.score
}

// Moves returns the number of accepted moves.
func (p Player) Moves() int {
	return p.moves
}

// MoveResult describes what a player move did.
type MoveResult struct {
	Moved     bool
	Collected bool
}

// Move resolves one player step. A rejected move changes nothing. An accepted
// move counts towards Moves and, on a collectible, adds points and clears the
// cell to path.
func (p *Player) Move(g *Grid, d Direction, points int) MoveResult {
	next, ok := resolveMove(g, p.pos, d, playerMayEnter)
	if !ok {
		return MoveResult{}
	}
	p.pos = next
	p.moves++

	res := MoveResult{Moved: true}
	if g.At(next) == CellCollectible {
		p.score += points
		g.set(next, CellPath)
		res.Collected = true
	}
	return res
}

// Wanderer is an adversary that moves in a random legal direction each turn.
type Wanderer struct {
	Actor
	rng Rand
}

// NewWanderer places a wanderer with its own random source.
func NewWanderer(start Position, rng Rand) *Wanderer {
	return &Wanderer{Actor: Actor{pos: start, marker: MarkerWanderer}, rng: rng}
}

// NewSeededWanderer places a wanderer whose random source is seeded with seed.
func NewSeededWanderer(start Position, seed int64) *Wanderer {
	return NewWanderer(start, rand.New(rand.NewSource(seed)))
}

// Wander draws up to attempts random directions and takes the first one that
// lands on a plain path cell. It reports whether the wanderer moved; staying
// put after every draw fails is normal.
func (w *Wanderer) Wander(g *Grid, attempts int) bool {
	for range attempts {
		d := Directions[w.rng.Intn(len(Directions))]
		if next, ok := resolveMove(g, w.pos, d, wandererMayEnter); ok {
			w.pos = next
			return true
		}
	}
	return false
}
