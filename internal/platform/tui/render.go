package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorWall:        lipgloss.NewStyle().Background(lipgloss.Color("5")),
	core.ColorPlayer:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorWanderer:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorExit:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorCollectible: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorHUD:         lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorWarning:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBanner:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.At(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.At(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderPlain converts a Screen buffer to text without styling. Trailing
// blanks are trimmed and rows end with sep.
func RenderPlain(s *core.Screen, sep string) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height() + s.Height()*len(sep))
	for y := range s.Height() {
		sb.WriteString(strings.TrimRight(s.Row(y), " "))
		sb.WriteString(sep)
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
