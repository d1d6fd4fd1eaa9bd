// Package pkg provides the core libraries for stackshift drag and drop.
//
// # Overview
//
// Stackshift moves items within and between ordered, scrollable containers
// by dragging a floating proxy. The pkg directory is organized into four
// main areas:
//
//  1. [dnd] - The drag session manager and the capabilities containers implement
//  2. [collection] - A scrollable list container: reordering, hover targets, autoscroll
//  3. Runtime - [loop] (virtual clock), [anim] (tweens), [gesture] (press recognition)
//  4. [pipeline] - Assembly of a [board] into a running engine, and scripted replays
//
// Supporting packages: [geom] for rectangles and coordinate spaces, [config]
// for tuning, [errors] for coded errors, [observability] for hooks and
// [buildinfo] for version data.
//
// # Architecture
//
// The typical flow of one drag:
//
//	pointer press / move / release
//	         ↓
//	    [gesture] package (long press or movement begins the gesture)
//	         ↓
//	    [dnd] package (hit test, lift, largest-overlap target, drop or revert)
//	         ↓
//	    [collection] package (insert, move, delete; autoscroll at the edges)
//	         ↓
//	    [board] lists (the data, mutated in place)
//
// Everything runs on one goroutine. Time advances only when the owner of the
// [loop.Loop] says so, which keeps replays and tests deterministic.
//
// # Quick Start
//
// Replay a drag against the sample board:
//
//	import (
//	    "github.com/matzehuels/stackshift/pkg/board"
//	    "github.com/matzehuels/stackshift/pkg/config"
//	    "github.com/matzehuels/stackshift/pkg/pipeline"
//	)
//
//	r := pipeline.NewRunner(board.Sample(3, 21), config.Default())
//	r.Press(10, 6)
//	r.Move(40, 6)
//	r.Release(40, 6)
//	r.Settle(pipeline.DefaultSettle)
//	fmt.Println(r.Board.Snapshot())
//
// # Thread Safety
//
// No engine type is safe for concurrent use. Only [observability] hook
// registration is synchronized.
package pkg
