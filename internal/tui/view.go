package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/stackshift/pkg/board"
	"github.com/matzehuels/stackshift/pkg/collection"
	"github.com/matzehuels/stackshift/pkg/dnd"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	width, height := m.runner.Size()
	ui := m.runner.Config().UI

	rows := make([]string, 0, height)
	rows = append(rows, styleTitle.Render(m.runner.Board.Title))
	rows = append(rows, m.columnHeaders(ui.ColumnWidth, ui.Gap))

	blocks := make([][]string, len(m.runner.Columns))
	bodyRows := 0
	for i, c := range m.runner.Columns {
		blocks[i] = renderColumn(c, ui.ColumnWidth, ui.CardHeight)
		bodyRows = max(bodyRows, len(blocks[i]))
	}
	gap := strings.Repeat(" ", ui.Gap)
	for r := range bodyRows {
		var b strings.Builder
		for _, block := range blocks {
			b.WriteString(gap)
			b.WriteString(block[r])
		}
		rows = append(rows, b.String())
	}
	rows = append(rows, m.status())

	for i, row := range rows {
		rows[i] = ansi.Truncate(row, width, "")
	}
	screen := strings.Join(rows, "\n")

	for _, v := range m.canvas.Visuals() {
		f := v.Frame()
		block := renderProxy(v, int(math.Round(f.W)), int(math.Round(f.H)))
		if block == "" {
			continue
		}
		screen = overlayAt(screen, block, int(math.Round(f.X)), int(math.Round(f.Y)), width)
	}
	return screen
}

func (m Model) columnHeaders(width, gap int) string {
	var b strings.Builder
	for _, c := range m.runner.Columns {
		count := fmt.Sprint(c.Source().Count(c.Group()))
		if l, ok := c.Source().(*board.List); ok && l.Limit > 0 {
			count = fmt.Sprintf("%d/%d", len(l.Cards), l.Limit)
		}
		head := styleColumn.Render(c.Name()) + " " + styleDim.Render(count)
		b.WriteString(strings.Repeat(" ", gap))
		b.WriteString(padRight(ansi.Truncate(head, width, "…"), width))
	}
	return b.String()
}

func (m Model) status() string {
	s := m.runner.Manager.Session()
	if s == nil || !m.runner.Manager.InProgress() {
		parts := []string{"hold a card to drag", "wheel scrolls"}
		for _, k := range m.keys.ShortHelp() {
			h := k.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
		return styleDim.Render(" " + strings.Join(parts, " · "))
	}

	what := fmt.Sprint(s.Item)
	where := "nowhere"
	if over := s.Over(); over != nil {
		where = fmt.Sprint(over)
	}
	return styleStatus.Render(fmt.Sprintf(" %s %s → %s", m.runner.Manager.State(), what, where))
}

// renderColumn draws c's visible cells into exactly Frame().H rows of
// width cells. The hidden slot stays blank.
func renderColumn(c *collection.Collection, width, cardHeight int) []string {
	h := int(c.Frame().H)
	blank := strings.Repeat(" ", width)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = blank
	}

	if c.Source().Count(c.Group()) == 0 && h > 1 {
		lines[1] = padRight(styleDim.Render("  drop cards here"), width)
		return lines
	}

	top := c.Bounds().Y
	for _, cell := range c.VisibleCells() {
		if cell.Hidden {
			continue
		}
		card, _ := cell.Item.(*board.Card)
		row := int(math.Round(cell.Frame.Y - top))
		for k, line := range strings.Split(renderCard(card, width, cardHeight), "\n") {
			if r := row + k; r >= 0 && r < h {
				lines[r] = padRight(line, width)
			}
		}
	}
	return lines
}

// renderCard draws a card as a bordered box, or as a single styled line
// when the card is too short for borders. Locked cards get a plain border.
func renderCard(c *board.Card, width, height int) string {
	title, color, locked := "", cardColor(""), false
	if c != nil {
		title, color, locked = c.Title, cardColor(c.Color), c.Locked
	}
	return cardStyle(color, locked, width, height).Render(fit(title, width, height))
}

// renderProxy draws a lifted card at its current size. Proxies smaller
// than a readable card are skipped.
func renderProxy(v dnd.Visual, width, height int) string {
	if width < 4 || height < 1 {
		return ""
	}
	title, color := "", cardColor("")
	if p, ok := v.(*dnd.Proxy); ok {
		title = p.Label
		if c, ok := p.Item.(*board.Card); ok {
			color = cardColor(c.Color)
		}
	}
	style := cardStyle(color, false, width, height)
	if height >= 3 {
		style = style.Border(lipgloss.ThickBorder()).Bold(true)
	}
	return style.Render(fit(title, width, height))
}

func cardStyle(color lipgloss.TerminalColor, locked bool, width, height int) lipgloss.Style {
	if height < 3 {
		return lipgloss.NewStyle().
			Width(width).MaxWidth(width).
			Height(height).MaxHeight(height).
			Padding(0, 1).
			Foreground(color).Bold(true)
	}
	border := lipgloss.RoundedBorder()
	if locked {
		border = lipgloss.NormalBorder()
	}
	return lipgloss.NewStyle().
		Border(border).BorderForeground(color).
		Width(width - 2).Height(height - 2).
		MaxHeight(height).
		Padding(0, 1)
}

// fit truncates a title to the text area of a width x height card.
func fit(title string, width, height int) string {
	inner := width - 2
	if height >= 3 {
		inner -= 2
	}
	return ansi.Truncate(title, max(inner, 1), "…")
}
