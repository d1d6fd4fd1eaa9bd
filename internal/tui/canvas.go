package tui

import (
	"slices"

	"github.com/matzehuels/stackshift/pkg/dnd"
)

// Canvas keeps the proxies the manager has attached, in attach order, so
// the view can draw them above the columns.
type Canvas struct {
	visuals []dnd.Visual
}

func (c *Canvas) Attach(v dnd.Visual) {
	if !slices.Contains(c.visuals, v) {
		c.visuals = append(c.visuals, v)
	}
}

func (c *Canvas) Detach(v dnd.Visual) {
	c.visuals = slices.DeleteFunc(c.visuals, func(x dnd.Visual) bool { return x == v })
}

// Visuals returns the attached proxies, bottom first.
func (c *Canvas) Visuals() []dnd.Visual { return c.visuals }

var _ dnd.Canvas = (*Canvas)(nil)
