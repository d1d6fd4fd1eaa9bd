package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleColumn = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleStatus = lipgloss.NewStyle().Foreground(colorCyan)
)

// cardColor is the card's own color, or gray when it has none.
func cardColor(c string) lipgloss.TerminalColor {
	if c == "" {
		return colorGray
	}
	return lipgloss.Color(c)
}
