// Package gesture turns raw pointer input into drag gesture events.
//
// A [Recognizer] behaves like a long-press recognizer that also accepts a
// quick press-and-move: after a press accepted by the [Receiver], the
// gesture begins once the pointer has been held for MinimumPressDuration or
// has moved further than DeadZone from where it went down. A release before
// that is a tap and fails the gesture.
//
// Timing runs on a loop.Loop, so the recognizer shares the single event
// thread with the rest of the engine.
package gesture

import (
	"time"

	"github.com/matzehuels/stackshift/pkg/geom"
	"github.com/matzehuels/stackshift/pkg/loop"
)

// Phase is the stage of a gesture an Event reports.
type Phase int

const (
	// Began is sent once when the gesture is recognized.
	Began Phase = iota
	// Changed is sent for every pointer move after Began.
	Changed
	// Ended is sent when the pointer is released after Began.
	Ended
	// Cancelled is sent when input is aborted after Began.
	Cancelled
	// Failed is sent when an accepted press never became a gesture.
	Failed
)

func (p Phase) String() string {
	switch p {
	case Began:
		return "began"
	case Changed:
		return "changed"
	case Ended:
		return "ended"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is one gesture update. Point is in canvas space.
type Event struct {
	Phase Phase
	Point geom.Point
}

// Receiver consumes gesture events.
type Receiver interface {
	// ShouldBegin is asked on every press before anything else happens.
	// Returning false ignores the press entirely.
	ShouldBegin(p geom.Point) bool

	HandleGesture(e Event)
}

// Config tunes recognition.
type Config struct {
	// MinimumPressDuration is how long a still press takes to begin.
	MinimumPressDuration time.Duration

	// DeadZone is how far the pointer may travel before a press begins
	// immediately.
	DeadZone float64
}

// DefaultConfig returns the stock recognizer tuning.
func DefaultConfig() Config {
	return Config{
		MinimumPressDuration: 300 * time.Millisecond,
		DeadZone:             1,
	}
}

type state int

const (
	stateIdle state = iota
	statePossible
	stateBegan
)

// Recognizer tracks a single pointer.
type Recognizer struct {
	loop  *loop.Loop
	recv  Receiver
	cfg   Config
	state state
	start geom.Point
	last  geom.Point
	timer *loop.Timer
}

// New creates a recognizer that reports to recv.
func New(l *loop.Loop, recv Receiver, cfg Config) *Recognizer {
	return &Recognizer{loop: l, recv: recv, cfg: cfg}
}

// Active reports whether a gesture has begun and not yet finished.
func (g *Recognizer) Active() bool { return g.state == stateBegan }

// Press starts tracking a pointer that went down at p.
func (g *Recognizer) Press(p geom.Point) {
	if g.state != stateIdle {
		return
	}
	if !g.recv.ShouldBegin(p) {
		return
	}
	g.state = statePossible
	g.start, g.last = p, p
	g.timer = g.loop.After(g.cfg.MinimumPressDuration, func() {
		if g.state == statePossible {
			g.begin()
		}
	})
}

// Move reports the pointer at p while held down.
func (g *Recognizer) Move(p geom.Point) {
	switch g.state {
	case statePossible:
		g.last = p
		if p.Distance(g.start) > g.cfg.DeadZone {
			g.begin()
			g.recv.HandleGesture(Event{Phase: Changed, Point: p})
		}
	case stateBegan:
		g.last = p
		g.recv.HandleGesture(Event{Phase: Changed, Point: p})
	}
}

// Release reports the pointer going up at p.
func (g *Recognizer) Release(p geom.Point) {
	switch g.state {
	case statePossible:
		g.reset()
		g.recv.HandleGesture(Event{Phase: Failed, Point: p})
	case stateBegan:
		g.reset()
		g.recv.HandleGesture(Event{Phase: Ended, Point: p})
	}
}

// Abort cancels whatever is in progress, for example on focus loss.
func (g *Recognizer) Abort() {
	p := g.last
	switch g.state {
	case statePossible:
		g.reset()
		g.recv.HandleGesture(Event{Phase: Failed, Point: p})
	case stateBegan:
		g.reset()
		g.recv.HandleGesture(Event{Phase: Cancelled, Point: p})
	}
}

func (g *Recognizer) begin() {
	g.timer.Stop()
	g.state = stateBegan
	g.recv.HandleGesture(Event{Phase: Began, Point: g.last})
}

func (g *Recognizer) reset() {
	g.timer.Stop()
	g.timer = nil
	g.state = stateIdle
}
