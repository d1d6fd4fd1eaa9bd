package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackshift/pkg/dnd"
	"github.com/matzehuels/stackshift/pkg/geom"
	"github.com/matzehuels/stackshift/pkg/loop"
)

func TestAnimateFrameEndsAtTarget(t *testing.T) {
	l := loop.New()
	a := New(l, 10*time.Millisecond)
	v := dnd.NewProxy(nil, "x", geom.R(0, 0, 10, 10))

	done := 0
	a.AnimateFrame(v, geom.R(100, 0, 10, 10), 100*time.Millisecond, func() { done++ })
	assert.True(t, a.Animating(v))

	l.Advance(50 * time.Millisecond)
	assert.InDelta(t, 50, v.Frame().X, 0.001)
	assert.Zero(t, done)

	l.Advance(50 * time.Millisecond)
	assert.Equal(t, geom.R(100, 0, 10, 10), v.Frame())
	assert.Equal(t, 1, done)
	assert.False(t, a.Animating(v))
	assert.Zero(t, l.Pending())
}

func TestZeroDurationCompletesOnNextTurn(t *testing.T) {
	l := loop.New()
	a := New(l, 0)
	v := dnd.NewProxy(nil, "x", geom.R(0, 0, 1, 1))

	done := false
	a.AnimateFrame(v, geom.R(5, 5, 1, 1), 0, func() { done = true })
	assert.False(t, done)
	assert.Equal(t, geom.R(0, 0, 1, 1), v.Frame())

	l.Flush()
	assert.True(t, done)
	assert.Equal(t, geom.R(5, 5, 1, 1), v.Frame())
}

func TestNewerAnimationSupersedes(t *testing.T) {
	l := loop.New()
	a := New(l, 10*time.Millisecond)
	v := dnd.NewProxy(nil, "x", geom.R(0, 0, 10, 10))

	first, second := 0, 0
	a.AnimateFrame(v, geom.R(100, 0, 10, 10), 100*time.Millisecond, func() { first++ })
	l.Advance(20 * time.Millisecond)
	a.AnimateFrame(v, geom.R(0, 100, 10, 10), 100*time.Millisecond, func() { second++ })
	l.Advance(time.Second)

	assert.Zero(t, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, geom.R(0, 100, 10, 10), v.Frame())
}

func TestStopLeavesFrameAndDropsCompletion(t *testing.T) {
	l := loop.New()
	a := New(l, 10*time.Millisecond)
	v := dnd.NewProxy(nil, "x", geom.R(0, 0, 10, 10))

	called := false
	a.AnimateFrame(v, geom.R(100, 0, 10, 10), 100*time.Millisecond, func() { called = true })
	l.Advance(30 * time.Millisecond)
	at := v.Frame()

	a.Stop(v)
	a.Stop(v)
	l.Advance(time.Second)

	assert.False(t, called)
	assert.Equal(t, at, v.Frame())
}

func TestPerform(t *testing.T) {
	l := loop.New()
	a := New(l, 0)

	var order []string
	a.Perform(250*time.Millisecond,
		func() { order = append(order, "update") },
		func() { order = append(order, "done") })
	require.Equal(t, []string{"update"}, order)

	l.Advance(249 * time.Millisecond)
	assert.Equal(t, []string{"update"}, order)
	l.Advance(time.Millisecond)
	assert.Equal(t, []string{"update", "done"}, order)

	// nil functions are allowed
	a.Perform(0, nil, nil)
	l.Flush()
}
