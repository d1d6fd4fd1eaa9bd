package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFiresInDueOrder(t *testing.T) {
	l := New()
	var got []string

	l.After(30*time.Millisecond, func() { got = append(got, "c") })
	l.After(10*time.Millisecond, func() { got = append(got, "a") })
	l.After(10*time.Millisecond, func() { got = append(got, "b") })

	assert.Equal(t, 0, l.Advance(5*time.Millisecond))
	assert.Empty(t, got)

	assert.Equal(t, 3, l.Advance(time.Second))
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 1005*time.Millisecond, l.Now())
}

func TestEveryRepeatsUntilStopped(t *testing.T) {
	l := New()
	count := 0
	var timer *Timer
	timer = l.Every(10*time.Millisecond, func() {
		count++
		if count == 4 {
			timer.Stop()
		}
	})

	l.Advance(25 * time.Millisecond)
	assert.Equal(t, 2, count)
	assert.True(t, timer.Active())

	l.Advance(time.Second)
	assert.Equal(t, 4, count)
	assert.False(t, timer.Active())
	assert.Equal(t, 0, l.Pending())
}

func TestStopIsIdempotent(t *testing.T) {
	l := New()
	fired := false
	timer := l.After(time.Millisecond, func() { fired = true })

	timer.Stop()
	timer.Stop()
	l.Advance(time.Second)
	assert.False(t, fired)

	var nilTimer *Timer
	require.NotPanics(t, nilTimer.Stop)
	assert.False(t, nilTimer.Active())
}

func TestCallbacksScheduledWhileFiring(t *testing.T) {
	l := New()
	var got []time.Duration

	l.After(10*time.Millisecond, func() {
		got = append(got, l.Now())
		l.Post(func() { got = append(got, l.Now()) })
		l.After(50*time.Millisecond, func() { got = append(got, l.Now()) })
	})

	l.Advance(20 * time.Millisecond)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 10 * time.Millisecond}, got)

	l.Advance(100 * time.Millisecond)
	assert.Equal(t, 60*time.Millisecond, got[2])
}

func TestAdvanceIsNotReentrant(t *testing.T) {
	l := New()
	inner := -1
	l.Post(func() { inner = l.Advance(time.Second) })

	l.Flush()
	assert.Equal(t, 0, inner)
}

func TestEveryPanicsOnNonPositiveInterval(t *testing.T) {
	l := New()
	assert.Panics(t, func() { l.Every(0, func() {}) })
}
