package collection

import (
	"math"

	"github.com/matzehuels/stackshift/pkg/geom"
)

// Axis is the direction a layout stacks cells and scrolls in.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// FlowLayout stacks equally sized cells along Axis, Spacing apart, with an
// Inset margin around the whole run.
type FlowLayout struct {
	Axis     Axis
	CellSize geom.Size
	Spacing  float64
	Inset    float64
}

// DefaultLayout is a vertical list of 20x3 cells, one unit apart.
func DefaultLayout() FlowLayout {
	return FlowLayout{
		Axis:     Vertical,
		CellSize: geom.Size{W: 20, H: 3},
		Spacing:  1,
		Inset:    0,
	}
}

func (l FlowLayout) stride() float64 {
	if l.Axis == Horizontal {
		return l.CellSize.W + l.Spacing
	}
	return l.CellSize.H + l.Spacing
}

// CellFrame returns the local frame of the cell at index i.
func (l FlowLayout) CellFrame(i int) geom.Rect {
	along := l.Inset + float64(i)*l.stride()
	if l.Axis == Horizontal {
		return geom.R(along, l.Inset, l.CellSize.W, l.CellSize.H)
	}
	return geom.R(l.Inset, along, l.CellSize.W, l.CellSize.H)
}

// ContentSize returns the extent of n cells, insets included.
func (l FlowLayout) ContentSize(n int) geom.Size {
	run := 2 * l.Inset
	if n > 0 {
		run += float64(n)*l.stride() - l.Spacing
	}
	if l.Axis == Horizontal {
		return geom.Size{W: run, H: l.CellSize.H + 2*l.Inset}
	}
	return geom.Size{W: l.CellSize.W + 2*l.Inset, H: run}
}

// IndexAt returns the index of the cell containing p among n cells.
// Points in the spacing between cells hit nothing.
func (l FlowLayout) IndexAt(p geom.Point, n int) (int, bool) {
	along := p.Y
	if l.Axis == Horizontal {
		along = p.X
	}
	if l.stride() <= 0 {
		return 0, false
	}
	i := int(math.Floor((along - l.Inset) / l.stride()))
	if i < 0 || i >= n {
		return 0, false
	}
	if !l.CellFrame(i).Contains(p) {
		return 0, false
	}
	return i, true
}

// Range returns the half-open index range of cells among n that intersect
// the local rectangle r. An empty range is always [0, 0).
func (l FlowLayout) Range(r geom.Rect, n int) (lo, hi int) {
	if n == 0 || l.stride() <= 0 {
		return 0, 0
	}
	start, end := r.MinY(), r.MaxY()
	if l.Axis == Horizontal {
		start, end = r.MinX(), r.MaxX()
	}
	lo = int(math.Floor((start - l.Inset) / l.stride()))
	hi = int(math.Ceil((end-l.Inset)/l.stride())) + 1
	lo = max(lo, 0)
	hi = min(hi, n)
	for lo < hi && !l.CellFrame(lo).Overlaps(r) {
		lo++
	}
	for hi > lo && !l.CellFrame(hi-1).Overlaps(r) {
		hi--
	}
	if lo >= hi {
		return 0, 0
	}
	return lo, hi
}
