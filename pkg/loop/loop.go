// Package loop provides the single-threaded, virtual-clock scheduler the drag
// engine runs on.
//
// Nothing in this package blocks or starts goroutines. Callbacks run only
// from inside [Loop.Advance], in due-time order, so every gesture event,
// animation completion and autoscroll tick is serialized on whichever
// goroutine drives the loop. The terminal board advances the clock from its
// frame tick; tests and headless replays advance it explicitly.
//
// # Usage
//
//	l := loop.New()
//	t := l.Every(16*time.Millisecond, step)
//	l.After(300*time.Millisecond, func() { t.Stop() })
//	l.Advance(time.Second) // step runs 18 times
package loop

import (
	"container/heap"
	"time"
)

// Loop is a cooperative scheduler with a virtual clock. The zero value is
// not usable; call New.
type Loop struct {
	now    time.Duration
	seq    uint64
	queue  timerQueue
	firing bool
}

// New returns an empty loop whose clock starts at zero.
func New() *Loop {
	return &Loop{}
}

// Now returns the time elapsed on the loop's clock.
func (l *Loop) Now() time.Duration { return l.now }

// Pending returns the number of scheduled, unstopped timers.
func (l *Loop) Pending() int {
	n := 0
	for _, t := range l.queue {
		if !t.stopped {
			n++
		}
	}
	return n
}

// After schedules fn to run once, d after the current clock value.
// Negative durations are treated as zero.
func (l *Loop) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	return l.schedule(d, 0, fn)
}

// Post schedules fn for the next turn of the loop.
func (l *Loop) Post(fn func()) *Timer {
	return l.schedule(0, 0, fn)
}

// Every schedules fn to run each interval until the returned timer is
// stopped. The first run happens one interval from now. Every panics if
// interval is not positive.
func (l *Loop) Every(interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		panic("loop: non-positive interval for Every")
	}
	return l.schedule(interval, interval, fn)
}

func (l *Loop) schedule(delay, interval time.Duration, fn func()) *Timer {
	l.seq++
	t := &Timer{
		loop:     l,
		due:      l.now + delay,
		interval: interval,
		fn:       fn,
		seq:      l.seq,
	}
	heap.Push(&l.queue, t)
	return t
}

// Advance moves the clock forward by d, running every callback that becomes
// due on the way. Callbacks scheduled while advancing run in the same call
// when they fall due before the new clock value. It returns the number of
// callbacks run.
//
// Advance is not reentrant: a call from inside a callback does nothing and
// returns 0.
func (l *Loop) Advance(d time.Duration) int {
	if l.firing {
		return 0
	}
	if d < 0 {
		d = 0
	}
	target := l.now + d
	l.firing = true
	defer func() { l.firing = false }()

	fired := 0
	for l.queue.Len() > 0 {
		next := l.queue[0]
		if next.stopped {
			heap.Pop(&l.queue)
			continue
		}
		if next.due > target {
			break
		}
		heap.Pop(&l.queue)
		l.now = next.due
		if next.interval > 0 {
			next.due += next.interval
			l.seq++
			next.seq = l.seq
			heap.Push(&l.queue, next)
		} else {
			next.stopped = true
		}
		next.fn()
		fired++
	}
	l.now = target
	return fired
}

// Flush runs every callback that is already due without moving the clock.
func (l *Loop) Flush() int { return l.Advance(0) }
