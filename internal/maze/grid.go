package maze

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is the content of one grid square.
type Cell rune

// Cell values that may remain in a Grid after load.
const (
	CellWall        Cell = '#'
	CellPath        Cell = ' '
	CellCollectible Cell = '*'
)

// Markers that only appear in raw level data. Load strips them into entity
// state and leaves a path cell behind.
const (
	MarkerPlayer   = 'P'
	MarkerExit     = 'E'
	MarkerWanderer = 'X'
)

var (
	// ErrEmptyGrid is returned when level data has no rows or an empty first row.
	ErrEmptyGrid = errors.New("maze: grid is empty")

	// ErrRaggedGrid is returned when rows differ in width.
	ErrRaggedGrid = errors.New("maze: grid rows differ in width")
)

// Grid is a rectangular, row-major layout of cells. Actor markers never live
// in a Grid; they are overlaid when a frame is drawn.
type Grid struct {
	cells [][]Cell
	width int
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.cells)
}

// InBounds reports whether p lies inside [0,width) x [0,height).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < len(g.cells)
}

// At returns the cell at p. Out-of-bounds positions read as walls.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.cells[p.Y][p.X]
}

// set overwrites the cell at p. Callers check bounds.
func (g *Grid) set(p Position, c Cell) {
	g.cells[p.Y][p.X] = c
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Rows returns the grid as text rows.
func (g *Grid) Rows() []string {
	rows := make([]string, len(g.cells))
	for y, row := range g.cells {
		var sb strings.Builder
		for _, c := range row {
			sb.WriteRune(rune(c))
		}
		rows[y] = sb.String()
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{cells: make([][]Cell, len(g.cells)), width: g.width}
	for y, row := range g.cells {
		clone.cells[y] = make([]Cell, len(row))
		copy(clone.cells[y], row)
	}
	return clone
}

// WarningKind classifies a non-fatal level problem.
type WarningKind int

const (
	WarnMissingPlayer WarningKind = iota + 1
	WarnMissingExit
)

// Warning is a non-fatal problem found while loading a level.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// Layout is the result of loading raw level rows: the static grid plus the
// dynamic entity positions pulled out of it.
type Layout struct {
	Grid        *Grid
	PlayerStart Position
	Exit        Position
	Wanderers   []Position // discovery order, row by row
	Warnings    []Warning
}

// Load parses raw level rows.
//
// It fails with ErrEmptyGrid when there are no rows or the first row is empty,
// and with ErrRaggedGrid when any row differs in width from the first. A single
// scan picks up markers: the first 'P' is the player start, the first 'E' the
// exit, and every 'X' a wanderer. All markers are replaced by path cells.
// A missing 'P' puts the player at (0,0); a missing 'E' leaves the exit Unset.
// Both are reported as warnings.
func Load(rows []string) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	width := len([]rune(rows[0]))
	grid := &Grid{cells: make([][]Cell, len(rows)), width: width}
	layout := &Layout{
		Grid:        grid,
		PlayerStart: Unset,
		Exit:        Unset,
	}

	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrRaggedGrid, y, len(runes), width)
		}
		cells := make([]Cell, width)
		for x, r := range runes {
			p := Position{X: x, Y: y}
			switch r {
			case MarkerPlayer:
				if !layout.PlayerStart.IsSet() {
					layout.PlayerStart = p
				}
				r = rune(CellPath)
			case MarkerExit:
				if !layout.Exit.IsSet() {
					layout.Exit = p
				}
				r = rune(CellPath)
			case MarkerWanderer:
				layout.Wanderers = append(layout.Wanderers, p)
				r = rune(CellPath)
			}
			cells[x] = Cell(r)
		}
		grid.cells[y] = cells
	}

	if !layout.PlayerStart.IsSet() {
		layout.PlayerStart = Position{X: 0, Y: 0}
		layout.Warnings = append(layout.Warnings, Warning{
			Kind:    WarnMissingPlayer,
			Message: "player start 'P' not found, starting at (0,0)",
		})
	}
	if !layout.Exit.IsSet() {
		layout.Warnings = append(layout.Warnings, Warning{
			Kind:    WarnMissingExit,
			Message: "exit 'E' not found, level cannot be won",
		})
	}

	return layout, nil
}

// LoadError wraps any failure to obtain or parse a level.
type LoadError struct {
	Level  int
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("maze: cannot load level %d: %v", e.Level, e.Err)
	}
	return fmt.Sprintf("maze: cannot load level %d (%s): %v", e.Level, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
