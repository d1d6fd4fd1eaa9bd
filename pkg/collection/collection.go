package collection

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackshift/pkg/dnd"
	"github.com/matzehuels/stackshift/pkg/geom"
	"github.com/matzehuels/stackshift/pkg/loop"
	"github.com/matzehuels/stackshift/pkg/observability"
)

// DefaultAnimationDuration is how long a mutation batch blocks hover moves.
const DefaultAnimationDuration = 250 * time.Millisecond

// Cell is a laid-out slot as seen by a renderer.
type Cell struct {
	Position dnd.Position
	Frame    geom.Rect // local space
	Item     dnd.Item
	Hidden   bool
}

// Option configures a Collection.
type Option func(*Collection)

// WithLayout sets the cell layout.
func WithLayout(l FlowLayout) Option {
	return func(c *Collection) { c.layout = l }
}

// WithFrame places the collection on the canvas.
func WithFrame(r geom.Rect) Option {
	return func(c *Collection) { c.frame = r }
}

// WithGroup selects the data source group the collection shows.
func WithGroup(g int) Option {
	return func(c *Collection) { c.group = g }
}

// WithAutoscroll overrides the autoscroll tuning.
func WithAutoscroll(a Autoscroll) Option {
	return func(c *Collection) { c.auto = a }
}

// WithAnimationDuration sets how long each mutation batch lasts.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *Collection) { c.animDuration = d }
}

// WithLogger sets the logger for mutation and autoscroll tracing.
func WithLogger(l *log.Logger) Option {
	return func(c *Collection) {
		if l != nil {
			c.logger = l
		}
	}
}

// Collection is one scrollable ordered container.
type Collection struct {
	name         string
	source       DataSource
	loop         *loop.Loop
	animator     dnd.Animator
	layout       FlowLayout
	frame        geom.Rect
	offset       geom.Point
	group        int
	animDuration time.Duration
	logger       *log.Logger

	hidden    dnd.Position
	hasHidden bool
	inFlight  int

	origin    dnd.Position
	hasOrigin bool

	auto     Autoscroll
	timer    *loop.Timer
	ticks    int
	tracking bool
	current  geom.Rect
	item     dnd.Item
}

// New creates a collection named name showing src. Autoscroll timers run
// on l and mutation batches go through a.
func New(name string, src DataSource, l *loop.Loop, a dnd.Animator, opts ...Option) *Collection {
	c := &Collection{
		name:         name,
		source:       src,
		loop:         l,
		animator:     a,
		layout:       DefaultLayout(),
		animDuration: DefaultAnimationDuration,
		auto:         DefaultAutoscroll(),
		logger:       log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Collection) String() string { return c.name }

// Name returns the collection's name.
func (c *Collection) Name() string { return c.name }

// Source returns the data source.
func (c *Collection) Source() DataSource { return c.source }

// Layout returns the cell layout.
func (c *Collection) Layout() FlowLayout { return c.layout }

// Group returns the data source group shown.
func (c *Collection) Group() int { return c.group }

// =============================================================================
// Geometry
// =============================================================================

// Frame returns the collection's rectangle on the canvas.
func (c *Collection) Frame() geom.Rect { return c.frame }

// SetFrame moves or resizes the collection on the canvas. The scroll offset
// is clamped to the new viewport.
func (c *Collection) SetFrame(r geom.Rect) {
	c.frame = r
	c.SetContentOffset(c.offset)
}

// Bounds returns the visible region in local space.
func (c *Collection) Bounds() geom.Rect {
	return geom.R(c.offset.X, c.offset.Y, c.frame.W, c.frame.H)
}

// ContentOffset returns the scroll offset.
func (c *Collection) ContentOffset() geom.Point { return c.offset }

// ContentSize returns the scrollable extent. It is never smaller than the
// viewport.
func (c *Collection) ContentSize() geom.Size {
	s := c.layout.ContentSize(c.count())
	return geom.Size{W: math.Max(s.W, c.frame.W), H: math.Max(s.H, c.frame.H)}
}

// SetContentOffset scrolls to p, clamped to the scrollable range.
func (c *Collection) SetContentOffset(p geom.Point) {
	s := c.ContentSize()
	c.offset = geom.Pt(
		geom.Clamp(p.X, 0, s.W-c.frame.W),
		geom.Clamp(p.Y, 0, s.H-c.frame.H),
	)
}

// ScrollBy scrolls by (dx, dy), clamped to the scrollable range.
func (c *Collection) ScrollBy(dx, dy float64) {
	c.SetContentOffset(c.offset.Add(geom.Pt(dx, dy)))
}

// VisibleCells returns the cells intersecting the visible region.
func (c *Collection) VisibleCells() []Cell {
	n := c.count()
	lo, hi := c.layout.Range(c.Bounds(), n)
	cells := make([]Cell, 0, hi-lo)
	for i := lo; i < hi; i++ {
		pos := dnd.Position{Group: c.group, Index: i}
		cells = append(cells, Cell{
			Position: pos,
			Frame:    c.layout.CellFrame(i),
			Item:     c.source.Item(pos),
			Hidden:   c.hasHidden && c.hidden == pos,
		})
	}
	return cells
}

// Hidden returns the slot whose cell is suppressed while its item is being
// dragged.
func (c *Collection) Hidden() (dnd.Position, bool) { return c.hidden, c.hasHidden }

// Animating reports whether a mutation batch is in flight.
func (c *Collection) Animating() bool { return c.inFlight > 0 }

func (c *Collection) count() int {
	if c.source == nil {
		return 0
	}
	return c.source.Count(c.group)
}

// positionAt returns the slot under the local point p. Points outside the
// visible region never resolve, so scrolled-out cards cannot be grabbed.
func (c *Collection) positionAt(p geom.Point) (dnd.Position, bool) {
	if !c.Bounds().Contains(p) {
		return dnd.Position{}, false
	}
	i, ok := c.layout.IndexAt(p, c.count())
	if !ok {
		return dnd.Position{}, false
	}
	return dnd.Position{Group: c.group, Index: i}, true
}

func (c *Collection) hide(pos dnd.Position) {
	c.hidden, c.hasHidden = pos, true
}

func (c *Collection) reveal() {
	c.hidden, c.hasHidden = dnd.Position{}, false
}

// =============================================================================
// Target Resolution
// =============================================================================

// TargetPosition resolves a local rectangle to the slot a dragged item
// would take. It reports false when no visible cell is covered enough or
// when the backward walk runs out of slots.
func (c *Collection) TargetPosition(r geom.Rect) (dnd.Position, bool) {
	if c.count() == 0 {
		return dnd.Position{Group: c.group}, true
	}
	near, ok := c.nearestVisible(r)
	if !ok {
		return dnd.Position{}, false
	}
	for pos := near; pos.Index >= 0; pos.Index-- {
		if c.source.CanDrop(pos) {
			return pos, true
		}
	}
	return dnd.Position{}, false
}

func (c *Collection) nearestVisible(r geom.Rect) (dnd.Position, bool) {
	center := r.Center()
	best, found := dnd.Position{}, false
	bestDist := math.Inf(1)
	for _, cell := range c.VisibleCells() {
		if cell.Frame.Intersect(r).Area() < cell.Frame.Area()/3 {
			continue
		}
		if d := cell.Frame.Center().Distance(center); d < bestDist {
			best, bestDist, found = cell.Position, d, true
		}
	}
	return best, found
}

// =============================================================================
// Mutations
// =============================================================================

// commit starts an animation batch for an already applied mutation.
// inFlight counts batches: only hover moves wait for it, while enter, leave
// and revert always apply so an item is never in two containers at once.
func (c *Collection) commit(kind string) {
	c.inFlight++
	c.logger.Debug("collection mutated", "collection", c.name, "kind", kind)
	observability.Container().OnMutation(c.name, kind)
	c.animator.Perform(c.animDuration, nil, func() {
		if c.inFlight > 0 {
			c.inFlight--
		}
	})
}

// moveDataItem moves item to the slot under r if it is present and the slot
// differs. It does nothing while a batch is in flight.
func (c *Collection) moveDataItem(item dnd.Item, r geom.Rect) {
	if c.Animating() {
		observability.Container().OnMutationSkipped(c.name)
		return
	}
	from, ok := c.source.Position(item)
	if !ok {
		return
	}
	to, ok := c.TargetPosition(r)
	if !ok || to.Index == from.Index {
		return
	}
	c.source.Move(from, to)
	c.hide(to)
	c.commit("move")
}

// =============================================================================
// Draggable
// =============================================================================

// DragSourceRect returns the local frame of the hidden slot, or the zero
// rectangle when nothing is hidden.
func (c *Collection) DragSourceRect() geom.Rect {
	if !c.hasHidden {
		return geom.Rect{}
	}
	return c.layout.CellFrame(c.hidden.Index)
}

// CanDrag reports whether a draggable cell sits under p.
func (c *Collection) CanDrag(p geom.Point) bool {
	if c.source == nil {
		return false
	}
	pos, ok := c.positionAt(p)
	if !ok {
		return false
	}
	if dp, ok := c.source.(DragPolicy); ok {
		return dp.CanDragAt(pos)
	}
	return true
}

// RepresentationImage returns a proxy for the cell under p, framed in
// local space.
func (c *Collection) RepresentationImage(p geom.Point) dnd.Visual {
	pos, ok := c.positionAt(p)
	if !ok {
		return nil
	}
	item := c.source.Item(pos)
	label := ""
	if l, ok := c.source.(Labeler); ok {
		label = l.Label(item)
	}
	return dnd.NewProxy(item, label, c.layout.CellFrame(pos.Index))
}

// DataItem returns the item under p.
func (c *Collection) DataItem(p geom.Point) (dnd.Item, bool) {
	pos, ok := c.positionAt(p)
	if !ok {
		return nil, false
	}
	item := c.source.Item(pos)
	return item, item != nil
}

// DragDataItem removes item if it is still here.
func (c *Collection) DragDataItem(item dnd.Item) {
	pos, ok := c.source.Position(item)
	if !ok {
		return
	}
	c.source.Remove(pos)
	c.commit("delete")
}

// StartDragging hides the cell under p and remembers it as the origin.
func (c *Collection) StartDragging(p geom.Point) {
	pos, ok := c.positionAt(p)
	if !ok {
		return
	}
	c.hide(pos)
	c.origin, c.hasOrigin = pos, true
}

func (c *Collection) WillStopDragging() {
	c.stopAutoscroll()
}

func (c *Collection) DidStopDragging() {
	c.reveal()
	c.hasOrigin = false
	c.tracking = false
	c.item = nil
}

// RevertDrag puts item back in the slot it occupied when the drag started.
func (c *Collection) RevertDrag(item dnd.Item) {
	c.stopAutoscroll()
	if !c.hasOrigin {
		return
	}
	origin := c.origin
	if from, ok := c.source.Position(item); ok {
		if from.Index != origin.Index {
			c.source.Move(from, origin)
			c.commit("revert")
		}
	} else {
		origin.Index = min(origin.Index, c.count())
		c.source.Insert(item, origin)
		c.commit("revert")
	}
	c.hide(origin)
}

// =============================================================================
// Droppable
// =============================================================================

// CanDrop reports whether r's centre is visible and resolves to a slot the
// data source accepts.
func (c *Collection) CanDrop(r geom.Rect) bool {
	if c.source == nil || !c.Bounds().Contains(r.Center()) {
		return false
	}
	pos, ok := c.TargetPosition(r)
	return ok && c.source.CanDrop(pos)
}

// WillMoveDataItem inserts item at the slot under r unless it is already
// here.
func (c *Collection) WillMoveDataItem(item dnd.Item, r geom.Rect) {
	if _, ok := c.source.Position(item); ok {
		return
	}
	pos, ok := c.TargetPosition(r)
	if !ok {
		return
	}
	c.source.Insert(item, pos)
	c.hide(pos)
	c.commit("insert")
}

// DidMoveDataItem follows the hover: it moves item under r and starts or
// stops autoscroll.
func (c *Collection) DidMoveDataItem(item dnd.Item, r geom.Rect) {
	c.moveDataItem(item, r)
	c.current, c.item, c.tracking = r, item, true
	c.checkForEdge(r)
}

// DidMoveOutDataItem removes item as the hover leaves.
func (c *Collection) DidMoveOutDataItem(item dnd.Item) {
	c.stopAutoscroll()
	c.tracking = false
	c.item = nil
	defer c.reveal()

	pos, ok := c.source.Position(item)
	if !ok {
		return
	}
	c.source.Remove(pos)
	c.commit("delete")
}

// DropDataItem settles item where the hover left it.
func (c *Collection) DropDataItem(item dnd.Item, r geom.Rect) {
	c.stopAutoscroll()
	c.tracking = false
	c.item = nil
	c.reveal()
}

var (
	_ dnd.Draggable = (*Collection)(nil)
	_ dnd.Droppable = (*Collection)(nil)
	_ dnd.Reverter  = (*Collection)(nil)
)
