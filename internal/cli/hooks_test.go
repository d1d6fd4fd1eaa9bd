package cli

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackshift/pkg/observability"
)

func TestCountersInstall(t *testing.T) {
	c := newCounters(log.New(io.Discard))
	restore := c.install()

	observability.Drag().OnTargetChange("s", "a", "b")
	observability.Drag().OnDrop("s", "a", "b", time.Second)
	observability.Container().OnMutation("a", "delete")
	observability.Container().OnMutation("b", "insert")
	observability.Container().OnMutationSkipped("b")
	observability.Container().OnAutoscrollStart("b")
	observability.Container().OnAutoscrollStop("b", 7)

	restore()

	if c.targetChanges != 1 || c.mutations != 2 || c.skipped != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/2/1", c.targetChanges, c.mutations, c.skipped)
	}
	if c.autoscrolls != 1 || c.scrollTicks != 7 {
		t.Errorf("autoscroll = %d runs, %d ticks, want 1 and 7", c.autoscrolls, c.scrollTicks)
	}
	if _, ok := observability.Container().(observability.NoopContainerHooks); !ok {
		t.Error("restore should reinstate the no-op hooks")
	}
}
