// Package dnd coordinates drag-and-drop sessions across independently
// scrollable containers.
//
// A [Manager] owns at most one [Session] at a time. It listens to gesture
// events (see package gesture), decides which registered container sits
// under the floating proxy by overlap area, and sequences the capability
// callbacks of that container.
//
// # Capabilities
//
// Containers take part by implementing [Draggable] (a drag can start in
// them), [Droppable] (a drag can hover and drop in them), or both. Roles are
// discovered with interface checks on the registered [Container]. The
// optional lifecycle hooks of Draggable can be satisfied by embedding
// [NopDragHooks]. A source that also implements [Reverter] can restore its
// original order when a gesture is cancelled.
//
// # Session Lifecycle
//
//	Idle ──ShouldBegin──▶ Armed ──Began──▶ Dragging ──Ended/Cancelled──▶ Dropping ──done──▶ Idle
//
// Within one Changed event the order is strict: the previous target leaves,
// the new target enters, then the current target is told about the move.
//
// # Threading
//
// Nothing here is safe for concurrent use. All gesture events, animation
// completions and timer ticks are expected on a single goroutine, normally
// the one driving a loop.Loop.
package dnd
