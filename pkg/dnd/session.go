package dnd

import (
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/stackshift/pkg/geom"
)

// Session is the state of one drag, from a successful hit test until the
// proxy has landed. Only the Manager mutates it.
type Session struct {
	// ID identifies the session in logs and hooks.
	ID string

	// Item is the payload being moved.
	Item Item

	// StartedAt is the manager clock reading when the hit test armed the
	// session.
	StartedAt time.Duration

	offset    geom.Point
	grab      geom.Point
	source    Draggable
	over      Droppable
	proxy     Visual
	size      geom.Size
	cancelled bool
}

func newSession(source Draggable, proxy Visual, item Item, grab geom.Point, now time.Duration) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		Item:      item,
		StartedAt: now,
		offset:    grab.Sub(proxy.Frame().Center()),
		grab:      grab,
		source:    source,
		proxy:     proxy,
		size:      proxy.Frame().Size(),
	}
	if d, ok := source.(Droppable); ok {
		s.over = d
	}
	return s
}

// Source returns the container the drag started in.
func (s *Session) Source() Draggable { return s.source }

// Over returns the container currently receiving hover updates, or nil.
func (s *Session) Over() Droppable { return s.over }

// Proxy returns the floating visual.
func (s *Session) Proxy() Visual { return s.proxy }

// Offset is the grab point relative to the proxy's centre.
func (s *Session) Offset() geom.Point { return s.offset }

// Cancelled reports whether the gesture was cancelled rather than ended.
func (s *Session) Cancelled() bool { return s.cancelled }
