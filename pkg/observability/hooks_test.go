package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	// Drag hooks
	d := NoopDragHooks{}
	d.OnDragStart("s1", "todo")
	d.OnTargetChange("s1", "todo", "doing")
	d.OnDrop("s1", "todo", "doing", time.Second)
	d.OnCancel("s1", "todo", time.Second)

	// Container hooks
	c := NoopContainerHooks{}
	c.OnMutation("todo", "insert")
	c.OnMutationSkipped("todo")
	c.OnAutoscrollStart("todo")
	c.OnAutoscrollStop("todo", 12)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Drag().(NoopDragHooks); !ok {
		t.Error("Drag() should return NoopDragHooks by default")
	}
	if _, ok := Container().(NoopContainerHooks); !ok {
		t.Error("Container() should return NoopContainerHooks by default")
	}

	// Set custom hooks
	customDrag := &testDragHooks{}
	SetDragHooks(customDrag)
	if Drag() != customDrag {
		t.Error("SetDragHooks should set custom hooks")
	}

	customContainer := &testContainerHooks{}
	SetContainerHooks(customContainer)
	if Container() != customContainer {
		t.Error("SetContainerHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Drag().(NoopDragHooks); !ok {
		t.Error("Reset() should restore NoopDragHooks")
	}
	if _, ok := Container().(NoopContainerHooks); !ok {
		t.Error("Reset() should restore NoopContainerHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDragHooks{}
	SetDragHooks(custom)

	// Setting nil should be ignored
	SetDragHooks(nil)

	if Drag() != custom {
		t.Error("SetDragHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDragHooks struct{ NoopDragHooks }
type testContainerHooks struct{ NoopContainerHooks }
