package dnd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackshift/pkg/geom"
	"github.com/matzehuels/stackshift/pkg/gesture"
	"github.com/matzehuels/stackshift/pkg/observability"
)

// =============================================================================
// Configuration
// =============================================================================

const (
	// DefaultLiftScale enlarges the proxy when a drag begins.
	DefaultLiftScale = 1.31

	// DefaultLiftDuration is how long the lift animation runs.
	DefaultLiftDuration = 200 * time.Millisecond

	// DefaultDropDuration is how long the proxy takes to land.
	DefaultDropDuration = 300 * time.Millisecond
)

// Config tunes the manager's visual affordances. None of it changes which
// container receives an item.
type Config struct {
	LiftScale    float64
	LiftDuration time.Duration
	DropDuration time.Duration
}

// DefaultConfig returns the stock manager tuning.
func DefaultConfig() Config {
	return Config{
		LiftScale:    DefaultLiftScale,
		LiftDuration: DefaultLiftDuration,
		DropDuration: DefaultDropDuration,
	}
}

// State is the manager's position in the session lifecycle.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateDragging
	StateDropping
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateDragging:
		return "dragging"
	case StateDropping:
		return "dropping"
	default:
		return "unknown"
	}
}

// Option configures a Manager.
type Option func(*Manager)

// WithConfig overrides the default tuning.
func WithConfig(cfg Config) Option {
	return func(m *Manager) { m.cfg = cfg }
}

// WithLogger sets the logger used for debug tracing of sessions.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// Clock reports elapsed engine time. *loop.Loop satisfies it.
type Clock interface {
	Now() time.Duration
}

// WithClock times sessions on c instead of the wall clock. Engines driven
// by a virtual loop should pass it here so hook durations match
// animation time.
func WithClock(c Clock) Option {
	return func(m *Manager) {
		if c != nil {
			m.clock = c
		}
	}
}

// wallClock measures time since the manager was created.
type wallClock struct{ start time.Time }

func (w wallClock) Now() time.Duration { return time.Since(w.start) }

// WithDelegate sets the session delegate.
func WithDelegate(d Delegate) Option {
	return func(m *Manager) { m.delegate = d }
}

// =============================================================================
// Manager
// =============================================================================

// Manager owns the single active drag session and routes gesture events to
// the registered containers. It implements gesture.Receiver.
type Manager struct {
	canvas     Canvas
	delegate   Delegate
	animator   Animator
	containers []Container
	session    *Session
	state      State
	cfg        Config
	clock      Clock
	logger     *log.Logger
}

// NewManager creates a manager drawing proxies on canvas. The canvas may be
// nil and set later.
func NewManager(canvas Canvas, animator Animator, opts ...Option) *Manager {
	m := &Manager{
		canvas:   canvas,
		animator: animator,
		cfg:      DefaultConfig(),
		clock:    wallClock{start: time.Now()},
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register appends containers. Registration order breaks ties in hit tests
// and overlap selection.
func (m *Manager) Register(cs ...Container) {
	m.containers = append(m.containers, cs...)
}

// Containers returns the registered containers in order.
func (m *Manager) Containers() []Container { return m.containers }

// SetCanvas replaces the canvas. Passing nil detaches the manager from any
// canvas; proxies are then simply not shown.
func (m *Manager) SetCanvas(c Canvas) { m.canvas = c }

// SetDelegate replaces the delegate. Nil disables notifications.
func (m *Manager) SetDelegate(d Delegate) { m.delegate = d }

// State returns the current lifecycle state.
func (m *Manager) State() State { return m.state }

// Session returns the current session, or nil when idle.
func (m *Manager) Session() *Session { return m.session }

// InProgress reports whether a drag is running or landing.
func (m *Manager) InProgress() bool {
	return m.state == StateDragging || m.state == StateDropping
}

// ShouldBegin is the hit-test gate run before a gesture starts. p is in
// canvas space. It arms a session on the first draggable container, in
// registration order, that accepts the press and yields both a proxy and a
// data item.
func (m *Manager) ShouldBegin(p geom.Point) bool {
	if m.InProgress() {
		return false
	}
	for _, c := range m.containers {
		d, ok := c.(Draggable)
		if !ok {
			continue
		}
		local := geom.PointToLocal(p, c.Frame(), c.Bounds())
		if !d.CanDrag(local) {
			continue
		}
		proxy := d.RepresentationImage(local)
		if proxy == nil {
			continue
		}
		item, ok := d.DataItem(local)
		if !ok {
			continue
		}

		proxy.SetFrame(geom.ToCanvas(proxy.Frame(), c.Frame(), c.Bounds()))
		m.session = newSession(d, proxy, item, p, m.clock.Now())
		m.state = StateArmed
		m.logger.Debug("drag armed", "session", m.session.ID, "source", containerName(c), "at", p)
		return true
	}
	return false
}

// HandleGesture advances the session for one gesture event.
func (m *Manager) HandleGesture(e gesture.Event) {
	s := m.session
	if s == nil {
		return
	}
	switch e.Phase {
	case gesture.Began:
		if m.state == StateArmed {
			m.begin(s)
		}
	case gesture.Changed:
		if m.state == StateDragging {
			m.change(s, e.Point)
		}
	case gesture.Ended, gesture.Cancelled:
		if m.state == StateDragging {
			m.end(s, e.Phase == gesture.Cancelled)
		} else if m.state == StateArmed {
			m.disarm()
		}
	case gesture.Failed:
		if m.state == StateArmed {
			m.disarm()
		}
	}
}

func (m *Manager) disarm() {
	m.logger.Debug("drag disarmed", "session", m.session.ID)
	m.session = nil
	m.state = StateIdle
}

// begin lifts the proxy. The source is told about the press point the
// session was armed with, which may differ from where recognition happened.
func (m *Manager) begin(s *Session) {
	m.state = StateDragging
	if m.canvas != nil {
		m.canvas.Attach(s.proxy)
	}

	lifted := s.proxy.Frame().ScaleAboutCenter(m.cfg.LiftScale)
	s.size = lifted.Size()
	m.animator.AnimateFrame(s.proxy, lifted, m.cfg.LiftDuration, nil)

	src := s.source
	src.StartDragging(geom.PointToLocal(s.grab, src.Frame(), src.Bounds()))
	if m.delegate != nil {
		m.delegate.DidStartDragging(s)
	}

	m.logger.Debug("drag started", "session", s.ID, "source", containerName(src))
	observability.Drag().OnDragStart(s.ID, containerName(src))
}

// change moves the proxy under the pointer and routes hover notifications to
// the container with the largest overlap.
func (m *Manager) change(s *Session, p geom.Point) {
	m.animator.Stop(s.proxy)
	frame := geom.Rect{W: s.size.W, H: s.size.H}.WithCenter(p.Sub(s.offset))
	s.proxy.SetFrame(frame)

	target := m.mainOver(s, frame)
	if target == nil {
		return
	}

	r := geom.ToLocal(frame, target.Frame(), target.Bounds())
	if !target.CanDrop(r) {
		return
	}

	if !same(target, s.over) {
		from := "none"
		if s.over != nil {
			from = containerName(s.over)
			s.over.DidMoveOutDataItem(s.Item)
		}
		target.WillMoveDataItem(s.Item, r)

		m.logger.Debug("drag target changed", "session", s.ID, "from", from, "to", containerName(target))
		observability.Drag().OnTargetChange(s.ID, from, containerName(target))
	}

	s.over = target
	target.DidMoveDataItem(s.Item, r)
}

// mainOver picks the droppable container whose canvas frame overlaps the
// proxy the most. Equal areas keep the earliest registered container. With
// no overlap at all the source is used if it is droppable.
func (m *Manager) mainOver(s *Session, frame geom.Rect) Droppable {
	var best Droppable
	bestArea := 0.0
	for _, c := range m.containers {
		d, ok := c.(Droppable)
		if !ok {
			continue
		}
		if area := frame.Intersect(c.Frame()).Area(); area > bestArea {
			best, bestArea = d, area
		}
	}
	if best == nil {
		if d, ok := s.source.(Droppable); ok {
			best = d
		}
	}
	return best
}

func (m *Manager) end(s *Session, cancelled bool) {
	m.state = StateDropping
	s.cancelled = cancelled
	src := s.source
	frame := s.proxy.Frame()

	var landing geom.Rect
	handedOff := false

	switch {
	case cancelled:
		if s.over != nil && !same(s.over, src) {
			s.over.DidMoveOutDataItem(s.Item)
		}
		if r, ok := src.(Reverter); ok {
			r.RevertDrag(s.Item)
		}
	case s.over != nil && !same(s.over, src):
		src.DragDataItem(s.Item)
		s.over.DropDataItem(s.Item, geom.ToLocal(frame, s.over.Frame(), s.over.Bounds()))
		landing = dropRect(s.over, frame)
		handedOff = true
	}

	if !handedOff {
		landing = geom.ToCanvas(src.DragSourceRect(), src.Frame(), src.Bounds())
	}

	src.WillStopDragging()

	elapsed := m.clock.Now() - s.StartedAt
	if cancelled {
		m.logger.Debug("drag cancelled", "session", s.ID, "source", containerName(src))
		observability.Drag().OnCancel(s.ID, containerName(src), elapsed)
	} else {
		target := containerName(src)
		if handedOff {
			target = containerName(s.over)
		}
		m.logger.Debug("drag dropped", "session", s.ID, "source", containerName(src), "target", target)
		observability.Drag().OnDrop(s.ID, containerName(src), target, elapsed)
	}

	m.animator.AnimateFrame(s.proxy, landing, m.cfg.DropDuration, func() { m.finish(s) })
}

// dropRect is a zero-size rectangle centred on the part of the proxy that
// lies inside the target's visible bounds, in canvas space.
func dropRect(target Droppable, frame geom.Rect) geom.Rect {
	local := geom.ToLocal(frame, target.Frame(), target.Bounds())
	common := local.Intersect(target.Bounds())
	if common.IsEmpty() {
		return target.Frame().Zero()
	}
	return geom.ToCanvas(common, target.Frame(), target.Bounds()).Zero()
}

func (m *Manager) finish(s *Session) {
	if m.session != s {
		return
	}
	if m.canvas != nil {
		m.canvas.Detach(s.proxy)
	}
	s.source.DidStopDragging()
	if m.delegate != nil {
		m.delegate.DidEndDragging(s)
	}
	m.logger.Debug("drag finished", "session", s.ID)
	m.session = nil
	m.state = StateIdle
}

func containerName(c Container) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", c)
}

var _ gesture.Receiver = (*Manager)(nil)
