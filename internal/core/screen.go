package core

import "strings"

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a fixed-size cell buffer for one frame. The game draws runes
// with a color slot; the front end decides what each slot looks like.
// Drawing outside the buffer is clipped.
type Screen struct {
	width, height int
	cells         []Cell // row-major
}

// NewScreen creates a blank screen. Negative sizes become zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions and blanks the buffer. Every frame is
// redrawn from game state, so nothing is preserved.
func (s *Screen) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear fills the screen with uncoloured spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetColored places a rune with a color slot at (x, y).
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if s.inBounds(x, y) {
		s.cells[y*s.width+x] = Cell{Rune: r, Color: c}
	}
}

// At returns the cell at (x, y), or a blank cell outside the screen.
func (s *Screen) At(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blank
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text left to right starting at (x, y).
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawTextCentered draws text centred horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	s.DrawText(max(0, (s.width-len([]rune(text)))/2), y, text, c)
}

// Fill paints every cell of r.
func (s *Screen) Fill(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// Frame outlines r with ASCII edges and '+' corners.
func (s *Screen) Frame(r Rect, c Color) {
	if r.Empty() {
		return
	}
	for x := r.X; x < r.Right(); x++ {
		s.SetColored(x, r.Y, '-', c)
		s.SetColored(x, r.Bottom()-1, '-', c)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		s.SetColored(r.X, y, '|', c)
		s.SetColored(r.Right()-1, y, '|', c)
	}
	for _, p := range [][2]int{{r.X, r.Y}, {r.Right() - 1, r.Y}, {r.X, r.Bottom() - 1}, {r.Right() - 1, r.Bottom() - 1}} {
		s.SetColored(p[0], p[1], '+', c)
	}
}

// Row returns row y as plain text; rows outside the screen are spaces.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x := range s.width {
		runes[x] = s.cells[y*s.width+x].Rune
	}
	return string(runes)
}

// String returns the whole screen as plain text, rows joined by newlines.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range s.height {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
