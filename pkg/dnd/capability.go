package dnd

import (
	"time"

	"github.com/matzehuels/stackshift/pkg/geom"
)

// Item is the opaque payload being dragged. The engine never inspects it;
// data sources locate it by their own notion of identity.
type Item any

// Position addresses a slot inside a container's ordered sequence.
type Position struct {
	Group int
	Index int
}

// =============================================================================
// Containers
// =============================================================================

// Container is anything the manager can place on the canvas.
//
// Containers are compared by interface equality, so implementations must be
// comparable (pointer receivers in practice).
type Container interface {
	// Frame is the container's rectangle in canvas space.
	Frame() geom.Rect

	// Bounds is the visible region in the container's local space. Its
	// origin is the scroll offset.
	Bounds() geom.Rect
}

// Draggable is implemented by containers a drag can start from.
// Points and rectangles are in the container's local space.
type Draggable interface {
	Container

	// DragSourceRect is the current rectangle of the dragged item's slot,
	// used as the landing spot when a drag returns home.
	DragSourceRect() geom.Rect

	// CanDrag reports whether a press at p may start a drag.
	CanDrag(p geom.Point) bool

	// RepresentationImage returns a detached proxy for the item at p, or
	// nil if there is nothing to drag there.
	RepresentationImage(p geom.Point) Visual

	// DataItem returns the payload at p.
	DataItem(p geom.Point) (Item, bool)

	// DragDataItem removes item from this container for good.
	DragDataItem(item Item)

	StartDragging(p geom.Point)
	WillStopDragging()
	DidStopDragging()
}

// NopDragHooks gives the optional Draggable lifecycle hooks empty bodies.
// Embed it in containers that do not care about them.
type NopDragHooks struct{}

func (NopDragHooks) StartDragging(geom.Point) {}
func (NopDragHooks) WillStopDragging()        {}
func (NopDragHooks) DidStopDragging()         {}

// Droppable is implemented by containers a drag can hover over and drop
// into. Rectangles are the proxy's frame converted into local space.
type Droppable interface {
	Container

	// CanDrop reports whether a drop at r is currently acceptable.
	CanDrop(r geom.Rect) bool

	// WillMoveDataItem is called once when item enters this container
	// during the current hover. It inserts the item if absent.
	WillMoveDataItem(item Item, r geom.Rect)

	// DidMoveDataItem is called on every hover update over this container.
	DidMoveDataItem(item Item, r geom.Rect)

	// DidMoveOutDataItem is called when the hover moves to another
	// container. It removes the item.
	DidMoveOutDataItem(item Item)

	// DropDataItem settles item where it was last placed.
	DropDataItem(item Item, r geom.Rect)
}

// Reverter is implemented by drag sources that can put the dragged item
// back where it was when the drag started.
type Reverter interface {
	RevertDrag(item Item)
}

// =============================================================================
// Collaborators
// =============================================================================

// Visual is a floating proxy drawn above every container.
type Visual interface {
	Frame() geom.Rect
	SetFrame(geom.Rect)
}

// Canvas hosts proxies above all containers. The manager holds it without
// owning it; it may be replaced or cleared at any time.
type Canvas interface {
	Attach(v Visual)
	Detach(v Visual)
}

// Animator runs time-based visual changes. Completion callbacks must be
// delivered later on the same goroutine, never from inside the call.
type Animator interface {
	// AnimateFrame moves v to frame over d, then calls done (which may be
	// nil). A newer animation of the same visual supersedes an older one,
	// whose done is dropped.
	AnimateFrame(v Visual, frame geom.Rect, d time.Duration, done func())

	// Stop cancels any animation of v without calling its done.
	Stop(v Visual)

	// Perform applies update now and calls done once the change has had d
	// to settle.
	Perform(d time.Duration, update func(), done func())
}

// Delegate observes session boundaries. Each method fires exactly once per
// session.
type Delegate interface {
	DidStartDragging(s *Session)
	DidEndDragging(s *Session)
}

// DelegateFuncs adapts plain functions to Delegate. Nil fields are skipped.
type DelegateFuncs struct {
	Start func(*Session)
	End   func(*Session)
}

func (d DelegateFuncs) DidStartDragging(s *Session) {
	if d.Start != nil {
		d.Start(s)
	}
}

func (d DelegateFuncs) DidEndDragging(s *Session) {
	if d.End != nil {
		d.End(s)
	}
}

func same(a, b Container) bool {
	return a != nil && b != nil && a == b
}
