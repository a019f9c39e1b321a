package maze

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Header text. The legend mirrors the classic console layout.
const (
	instructionsLine = "Use W, A, S, D to move. Reach 'E' to win! ('Q' to Quit)"
	legendLine       = "'#'=Wall, ' '=Path, '*'=Collectible, 'X'=Enemy, 'P'=Player, 'E'=Exit"
	headerLines      = 5
	footerLines      = 1
)

// RenderOptions tune how a frame is laid out.
type RenderOptions struct {
	DoubleWidth bool   // draw every cell two columns wide
	Hint        string // optional bottom line, e.g. front-end key help
}

// Render draws the view into dst: a centred header, the grid with actors
// overlaid, and a banner for cleared, won, lost or aborted runs.
func Render(dst *core.Screen, v View, opts RenderOptions) {
	dst.Clear()

	if v.Phase == PhaseAborted || v.Grid == nil {
		renderBanner(dst, dst.Height()/2-2, bannerLines(v))
		renderHint(dst, opts.Hint)
		return
	}

	cellW := 1
	if opts.DoubleWidth {
		cellW = 2
	}
	gridW := v.Grid.Width() * cellW
	gridH := v.Grid.Height()
	extra := len(v.Warnings)
	area := core.CenteredRect(dst.Width(), dst.Height(), gridW, headerLines+extra+gridH+footerLines)

	y := area.Y
	dst.DrawTextCentered(y, fmt.Sprintf("--- Maze Game --- Level: %d ---", v.Level), core.ColorHUD)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Score: %d   Moves: %d", v.Score, v.Moves), core.ColorHUD)
	dst.DrawTextCentered(y+2, instructionsLine, core.ColorDefault)
	dst.DrawTextCentered(y+3, legendLine, core.ColorGray)
	for i, w := range v.Warnings {
		dst.DrawTextCentered(y+4+i, "! "+w.Message, core.ColorWarning)
	}

	origin := core.NewRect(area.X, y+headerLines+extra, gridW, gridH)
	renderGrid(dst, v, origin, cellW)

	if lines := bannerLines(v); len(lines) > 0 {
		renderBanner(dst, origin.Y+gridH/2-len(lines)/2-1, lines)
	}
	renderHint(dst, opts.Hint)
}

// renderGrid draws cells and actors. Player wins over wanderers; the exit is
// only drawn where no actor stands.
func renderGrid(dst *core.Screen, v View, at core.Rect, cellW int) {
	g := v.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := Position{X: x, Y: y}
			glyph, color := cellGlyph(g.At(p))
			switch {
			case p == v.Player:
				glyph, color = MarkerPlayer, core.ColorPlayer
			case containsPosition(v.Wanderers, p):
				glyph, color = MarkerWanderer, core.ColorWanderer
			case p == v.Exit:
				glyph, color = MarkerExit, core.ColorExit
			}
			drawCell(dst, at.X+x*cellW, at.Y+y, cellW, glyph, color)
		}
	}
}

// cellGlyph returns how a static cell looks.
func cellGlyph(c Cell) (rune, core.Color) {
	switch c {
	case CellWall:
		return ' ', core.ColorWall
	case CellCollectible:
		return '*', core.ColorCollectible
	case CellPath:
		return ' ', core.ColorDefault
	default:
		return rune(c), core.ColorDefault
	}
}

// drawCell writes one grid cell. Wide cells put the glyph in the second column
// so actors read as " P".
func drawCell(dst *core.Screen, x, y, w int, glyph rune, color core.Color) {
	if w == 1 {
		dst.SetColored(x, y, glyph, color)
		return
	}
	dst.SetColored(x, y, ' ', color)
	dst.SetColored(x+1, y, glyph, color)
}

func containsPosition(ps []Position, p Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

// bannerLines returns the overlay text for the view's phase.
func bannerLines(v View) []string {
	switch v.Phase {
	case PhaseLevelCleared:
		return []string{
			fmt.Sprintf("Level %d Cleared!", v.Level),
			fmt.Sprintf("Press any key to start Level %d...", v.Level+1),
			"(q quits the run)",
		}
	case PhaseVictory:
		return []string{
			"Congratulations! You beat the game!",
			fmt.Sprintf("Final Score: %d, Total Moves: %d", v.Score, v.Moves),
		}
	case PhaseGameOver:
		cause := "Caught by an enemy"
		if v.Reason == ReasonQuit {
			cause = "You quit"
		}
		return []string{
			"GAME OVER",
			cause,
			fmt.Sprintf("Final Score: %d, Moves: %d", v.Score, v.Moves),
		}
	case PhaseAborted:
		msg := "unknown error"
		if v.Err != nil {
			msg = v.Err.Error()
		}
		return []string{
			fmt.Sprintf("Failed to load level %d", v.Level),
			msg,
		}
	default:
		return nil
	}
}

// renderBanner draws a boxed block of centred lines starting at row top.
func renderBanner(dst *core.Screen, top int, lines []string) {
	if len(lines) == 0 {
		return
	}
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := min(maxLen+4, dst.Width())
	boxH := len(lines) + 2
	top = core.Clamp(top, 0, dst.Height()-boxH)
	box := core.NewRect(max(0, (dst.Width()-boxW)/2), top, boxW, boxH)

	dst.Fill(box, ' ', core.ColorBanner)
	dst.Frame(box, core.ColorBanner)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, core.ColorBanner)
	}
}

func renderHint(dst *core.Screen, hint string) {
	if hint == "" || dst.Height() == 0 {
		return
	}
	dst.DrawTextCentered(dst.Height()-1, hint, core.ColorGray)
}
