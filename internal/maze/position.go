// Package maze implements the turn-based maze game: the grid and its load
// contract, the player and wanderer actors, per-turn resolution and the
// controller that sequences levels. It has no knowledge of terminals; front
// ends feed it commands and draw the View it exposes.
package maze

import "fmt"

// Position is a cell coordinate on the grid. X grows to the right, Y grows
// downwards.
type Position struct {
	X, Y int
}

// Unset is the sentinel for a position that was never found in a level file.
var Unset = Position{X: -1, Y: -1}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// IsSet reports whether p differs from the Unset sentinel.
func (p Position) IsSet() bool {
	return p != Unset
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four unit moves.
type Direction int

// The order matches the random draw used for wanderers: 0..3.
const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction in draw order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the unit vector of the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
