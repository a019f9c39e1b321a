package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the menu and scoreboard screens. Game frames use
// colorStyles in render.go instead.
var (
	accent    = lipgloss.Color("229")
	selectBg  = lipgloss.Color("57")
	border    = lipgloss.Color("240")
	muted     = lipgloss.Color("241")
	mazeTitle = lipgloss.Color("13")

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(mazeTitle)
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
	selectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	helpStyle      = lipgloss.NewStyle().Foreground(muted)
	emptyStyle     = lipgloss.NewStyle().Foreground(muted).Italic(true).Padding(2, 4)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(muted)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Background(selectBg).Padding(0, 1)
)
