// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup
// to receive events about drag sessions and container activity.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are called from the engine's event thread. Implementations must
// return quickly and must not call back into the engine.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDragHooks(&myDragHooks{})
//	    observability.SetContainerHooks(&myContainerHooks{})
//	    // ... run application
//	}
//
// The engine calls hooks to emit events:
//
//	observability.Drag().OnDragStart(sessionID, source)
//	// ... gesture runs ...
//	observability.Drag().OnDrop(sessionID, source, target, duration)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives session-level events from the drag manager.
// Container names are whatever the containers report via fmt.Stringer,
// or their Go type otherwise.
type DragHooks interface {
	OnDragStart(session, source string)
	OnTargetChange(session, from, to string)
	OnDrop(session, source, target string, duration time.Duration)
	OnCancel(session, source string, duration time.Duration)
}

// =============================================================================
// Container Hooks
// =============================================================================

// ContainerHooks receives events from individual containers.
type ContainerHooks interface {
	// OnMutation records an insert, delete or move.
	OnMutation(container, kind string)

	// OnMutationSkipped records a hover move dropped because an animation
	// was still in flight.
	OnMutationSkipped(container string)

	// OnAutoscrollStart and OnAutoscrollStop bracket an autoscroll run.
	OnAutoscrollStart(container string)
	OnAutoscrollStop(container string, ticks int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(string, string)                   {}
func (NoopDragHooks) OnTargetChange(string, string, string)        {}
func (NoopDragHooks) OnDrop(string, string, string, time.Duration) {}
func (NoopDragHooks) OnCancel(string, string, time.Duration)       {}

// NoopContainerHooks is a no-op implementation of ContainerHooks.
type NoopContainerHooks struct{}

func (NoopContainerHooks) OnMutation(string, string)    {}
func (NoopContainerHooks) OnMutationSkipped(string)     {}
func (NoopContainerHooks) OnAutoscrollStart(string)     {}
func (NoopContainerHooks) OnAutoscrollStop(string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dragHooks      DragHooks      = NoopDragHooks{}
	containerHooks ContainerHooks = NoopContainerHooks{}
	hooksMu        sync.RWMutex
)

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any drag starts.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetContainerHooks registers custom container hooks.
func SetContainerHooks(h ContainerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		containerHooks = h
	}
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Container returns the registered container hooks.
func Container() ContainerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return containerHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dragHooks = NoopDragHooks{}
	containerHooks = NoopContainerHooks{}
}
