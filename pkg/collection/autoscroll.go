package collection

import (
	"math"
	"time"

	"github.com/matzehuels/stackshift/pkg/geom"
	"github.com/matzehuels/stackshift/pkg/observability"
)

// Autoscroll tunes edge scrolling during a hover.
type Autoscroll struct {
	// Threshold is the fraction of the dragged rectangle that must stick
	// out past an edge before scrolling starts.
	Threshold float64

	// MaxStep is the scroll distance per tick when the rectangle is fully
	// outside.
	MaxStep float64

	// Interval is the tick period.
	Interval time.Duration
}

// DefaultAutoscroll returns the stock tuning: 20% overhang, 15 units per
// tick at 60 Hz.
func DefaultAutoscroll() Autoscroll {
	return Autoscroll{
		Threshold: 0.2,
		MaxStep:   15,
		Interval:  time.Second / 60,
	}
}

// Autoscrolling reports whether the autoscroll timer is running.
func (c *Collection) Autoscrolling() bool { return c.timer.Active() }

func (c *Collection) checkForEdge(r geom.Rect) {
	if c.outside(r) > c.auto.Threshold {
		c.startAutoscroll()
	} else {
		c.stopAutoscroll()
	}
}

// outside is the share of r's extent along the scroll axis lying beyond
// the visible region, capped at 1.
func (c *Collection) outside(r geom.Rect) float64 {
	b := c.Bounds()
	var out float64
	if c.layout.Axis == Horizontal {
		if r.W <= 0 {
			return 0
		}
		out = math.Max(b.MinX()-r.MinX(), r.MaxX()-b.MaxX()) / r.W
	} else {
		if r.H <= 0 {
			return 0
		}
		out = math.Max(b.MinY()-r.MinY(), r.MaxY()-b.MaxY()) / r.H
	}
	return math.Min(out, 1)
}

func (c *Collection) step() geom.Point {
	if !c.tracking {
		return geom.Point{}
	}
	r, b := c.current, c.Bounds()
	size := c.auto.MaxStep * c.outside(r)
	var s geom.Point
	if c.layout.Axis == Horizontal {
		if r.MinX() < b.MinX() {
			s.X = -size
		}
		if r.MaxX() > b.MaxX() {
			s.X = size
		}
	} else {
		if r.MinY() < b.MinY() {
			s.Y = -size
		}
		if r.MaxY() > b.MaxY() {
			s.Y = size
		}
	}
	return s
}

func (c *Collection) tick() {
	s := c.step()
	next := c.offset.Add(s)
	content := c.ContentSize()
	if next.X < 0 || next.X+c.frame.W > content.W ||
		next.Y < 0 || next.Y+c.frame.H > content.H {
		c.stopAutoscroll()
		return
	}

	c.offset = next
	c.current = c.current.Translate(s)
	c.ticks++

	if c.item == nil {
		return
	}
	c.moveDataItem(c.item, c.current)
	if pos, ok := c.TargetPosition(c.current); ok {
		c.hide(pos)
	}
}

func (c *Collection) startAutoscroll() {
	if c.timer.Active() {
		return
	}
	interval := c.auto.Interval
	if interval <= 0 {
		interval = DefaultAutoscroll().Interval
	}
	c.ticks = 0
	c.timer = c.loop.Every(interval, c.tick)
	c.logger.Debug("autoscroll started", "collection", c.name)
	observability.Container().OnAutoscrollStart(c.name)
}

func (c *Collection) stopAutoscroll() {
	if !c.timer.Active() {
		return
	}
	c.timer.Stop()
	c.timer = nil
	c.logger.Debug("autoscroll stopped", "collection", c.name, "ticks", c.ticks)
	observability.Container().OnAutoscrollStop(c.name, c.ticks)
}
