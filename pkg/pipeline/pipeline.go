// Package pipeline assembles a board into a running drag engine.
//
// The same assembly backs the terminal board and headless replays, so both
// see identical behaviour for identical input.
//
// # Architecture
//
// Pointer input flows through four stages:
//
//  1. Gesture: raw press/move/release becomes Began/Changed/Ended/Cancelled
//  2. Manager: the drag session hit-tests, lifts and routes the proxy
//  3. Collections: one per list, reordering and autoscrolling
//  4. Board: the lists themselves, mutated in place
//
// Time only moves when the caller advances the [Runner]'s loop, so a replay
// is fully deterministic.
//
// # Usage
//
//	r := pipeline.NewRunner(board.Sample(3, 21), config.Default())
//	r.Resize(80, 24)
//	r.Press(12, 4)
//	r.Move(40, 4)
//	r.Release(40, 4)
//	r.Settle(pipeline.DefaultSettle)
package pipeline

import "time"

// =============================================================================
// Screen Geometry
// =============================================================================

const (
	// HeaderRows is the space above the columns: the board title and the
	// column names.
	HeaderRows = 2

	// FooterRows is the status line below the columns.
	FooterRows = 1

	// DefaultWidth and DefaultHeight are the screen size before the first
	// resize.
	DefaultWidth  = 80
	DefaultHeight = 24

	// DefaultSettle bounds how long Settle waits for animations to finish.
	DefaultSettle = 5 * time.Second
)

// =============================================================================
// Results
// =============================================================================

// Stats counts what happened during a run.
type Stats struct {
	Steps    int
	Sessions int
	Drops    int
	Cancels  int

	// Elapsed is virtual time on the runner's loop.
	Elapsed time.Duration
}

// Result is the outcome of a replay.
type Result struct {
	Titles [][]string
	Stats  Stats
}
