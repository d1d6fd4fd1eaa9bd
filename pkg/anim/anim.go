// Package anim runs frame tweens and settled mutation batches on a loop.Loop.
//
// The [Animator] is the engine's only source of time-based visual change.
// It never calls back synchronously: even a zero-length animation completes
// on the loop's next turn, so callers can rely on the state they just set up
// still being in place when the callback runs.
package anim

import (
	"time"

	"github.com/matzehuels/stackshift/pkg/dnd"
	"github.com/matzehuels/stackshift/pkg/geom"
	"github.com/matzehuels/stackshift/pkg/loop"
)

// DefaultFrameInterval is one frame at 60 Hz.
const DefaultFrameInterval = time.Second / 60

type tween struct {
	visual dnd.Visual
	from   geom.Rect
	to     geom.Rect
	start  time.Duration
	length time.Duration
	done   func()
	timer  *loop.Timer
}

// Animator implements dnd.Animator with linear tweens.
type Animator struct {
	loop     *loop.Loop
	interval time.Duration
	tweens   map[dnd.Visual]*tween
}

// New returns an animator stepping tweens every interval. A non-positive
// interval selects DefaultFrameInterval.
func New(l *loop.Loop, interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Animator{
		loop:     l,
		interval: interval,
		tweens:   make(map[dnd.Visual]*tween),
	}
}

// AnimateFrame tweens v from its current frame to frame over d and then
// calls done. An animation already running on v is dropped without its
// completion.
func (a *Animator) AnimateFrame(v dnd.Visual, frame geom.Rect, d time.Duration, done func()) {
	a.Stop(v)

	tw := &tween{
		visual: v,
		from:   v.Frame(),
		to:     frame,
		start:  a.loop.Now(),
		length: d,
		done:   done,
	}
	a.tweens[v] = tw

	if d <= 0 {
		tw.timer = a.loop.Post(func() { a.finish(tw) })
		return
	}
	tw.timer = a.loop.Every(a.interval, func() { a.step(tw) })
}

func (a *Animator) step(tw *tween) {
	t := float64(a.loop.Now()-tw.start) / float64(tw.length)
	if t >= 1 {
		a.finish(tw)
		return
	}
	tw.visual.SetFrame(geom.Lerp(tw.from, tw.to, t))
}

func (a *Animator) finish(tw *tween) {
	if a.tweens[tw.visual] != tw {
		return
	}
	tw.timer.Stop()
	delete(a.tweens, tw.visual)
	tw.visual.SetFrame(tw.to)
	if tw.done != nil {
		tw.done()
	}
}

// Stop cancels any animation of v, leaving it at its current frame.
func (a *Animator) Stop(v dnd.Visual) {
	if tw, ok := a.tweens[v]; ok {
		tw.timer.Stop()
		delete(a.tweens, v)
	}
}

// Animating reports whether v has a tween in flight.
func (a *Animator) Animating(v dnd.Visual) bool {
	_, ok := a.tweens[v]
	return ok
}

// Perform runs update now and done once d has elapsed on the loop. Either
// function may be nil.
func (a *Animator) Perform(d time.Duration, update func(), done func()) {
	if update != nil {
		update()
	}
	a.loop.After(d, func() {
		if done != nil {
			done()
		}
	})
}

var _ dnd.Animator = (*Animator)(nil)
