package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt draws block over screen with its top-left cell at (x, y). The
// screen is width cells wide; parts of block falling outside it are
// clipped. Styled text on either side of the block keeps its escapes.
func overlayAt(screen, block string, x, y, width int) string {
	rows := splitLines(screen)
	lines := splitLines(block)
	blockWidth := maxLineWidth(lines)

	for i, line := range lines {
		row := y + i
		if row < 0 || row >= len(rows) {
			continue
		}
		line = padRight(line, blockWidth)
		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}
		if col >= width {
			continue
		}
		line = ansi.Truncate(line, width-col, "")

		base := padRight(rows[row], width)
		left := ansi.Truncate(base, col, "")
		right := ansi.TruncateLeft(base, col+ansi.StringWidth(line), "")
		rows[row] = left + line + right
	}
	return strings.Join(rows, "\n")
}

func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		m = max(m, ansi.StringWidth(line))
	}
	return m
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
