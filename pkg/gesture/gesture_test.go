package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/stackshift/pkg/geom"
	"github.com/matzehuels/stackshift/pkg/loop"
)

type recorder struct {
	accept bool
	asked  []geom.Point
	events []Event
}

func (r *recorder) ShouldBegin(p geom.Point) bool {
	r.asked = append(r.asked, p)
	return r.accept
}

func (r *recorder) HandleGesture(e Event) { r.events = append(r.events, e) }

func (r *recorder) phases() []Phase {
	out := make([]Phase, len(r.events))
	for i, e := range r.events {
		out[i] = e.Phase
	}
	return out
}

func TestLongPressBegins(t *testing.T) {
	l := loop.New()
	r := &recorder{accept: true}
	g := New(l, r, DefaultConfig())

	g.Press(geom.Pt(3, 4))
	l.Advance(299 * time.Millisecond)
	assert.Empty(t, r.events)

	l.Advance(time.Millisecond)
	assert.Equal(t, []Phase{Began}, r.phases())
	assert.Equal(t, geom.Pt(3, 4), r.events[0].Point)
	assert.True(t, g.Active())

	g.Move(geom.Pt(3, 5))
	g.Release(geom.Pt(3, 6))
	assert.Equal(t, []Phase{Began, Changed, Ended}, r.phases())
	assert.False(t, g.Active())
}

func TestMovePastDeadZoneBeginsImmediately(t *testing.T) {
	l := loop.New()
	r := &recorder{accept: true}
	g := New(l, r, DefaultConfig())

	g.Press(geom.Pt(0, 0))
	g.Move(geom.Pt(0.5, 0))
	assert.Empty(t, r.events)

	g.Move(geom.Pt(2, 0))
	assert.Equal(t, []Phase{Began, Changed}, r.phases())

	// The long-press timer must not fire a second Began.
	l.Advance(time.Second)
	assert.Equal(t, []Phase{Began, Changed}, r.phases())
}

func TestTapFails(t *testing.T) {
	l := loop.New()
	r := &recorder{accept: true}
	g := New(l, r, DefaultConfig())

	g.Press(geom.Pt(1, 1))
	g.Release(geom.Pt(1, 1))
	l.Advance(time.Second)

	assert.Equal(t, []Phase{Failed}, r.phases())
}

func TestRejectedPressIsIgnored(t *testing.T) {
	l := loop.New()
	r := &recorder{accept: false}
	g := New(l, r, DefaultConfig())

	g.Press(geom.Pt(1, 1))
	g.Move(geom.Pt(9, 9))
	l.Advance(time.Second)
	g.Release(geom.Pt(9, 9))

	assert.Len(t, r.asked, 1)
	assert.Empty(t, r.events)
}

func TestAbort(t *testing.T) {
	l := loop.New()
	r := &recorder{accept: true}
	g := New(l, r, DefaultConfig())

	g.Press(geom.Pt(0, 0))
	g.Move(geom.Pt(5, 0))
	g.Abort()
	assert.Equal(t, []Phase{Began, Changed, Cancelled}, r.phases())
	assert.Equal(t, geom.Pt(5, 0), r.events[2].Point)

	g.Abort()
	assert.Len(t, r.events, 3)
}
