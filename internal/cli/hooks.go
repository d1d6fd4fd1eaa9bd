package cli

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackshift/pkg/observability"
)

// counters tallies engine events for the replay summary. Hooks fire on the
// engine's goroutine only, so no locking is needed.
type counters struct {
	logger *log.Logger

	targetChanges int
	mutations     int
	skipped       int
	autoscrolls   int
	scrollTicks   int
}

func newCounters(l *log.Logger) *counters {
	return &counters{logger: l}
}

// install registers c for both hook kinds and returns a func restoring the
// defaults.
func (c *counters) install() func() {
	observability.SetDragHooks(c)
	observability.SetContainerHooks(c)
	return observability.Reset
}

func (c *counters) OnDragStart(session, source string) {}

func (c *counters) OnTargetChange(session, from, to string) {
	c.targetChanges++
}

func (c *counters) OnDrop(session, source, target string, d time.Duration) {
	c.logger.Debug("drop", "session", session, "from", source, "to", target, "took", d.Round(time.Millisecond))
}

func (c *counters) OnCancel(session, source string, d time.Duration) {
	c.logger.Debug("cancel", "session", session, "source", source, "took", d.Round(time.Millisecond))
}

func (c *counters) OnMutation(container, kind string) {
	c.mutations++
}

func (c *counters) OnMutationSkipped(container string) {
	c.skipped++
}

func (c *counters) OnAutoscrollStart(container string) {
	c.autoscrolls++
}

func (c *counters) OnAutoscrollStop(container string, ticks int) {
	c.scrollTicks += ticks
}

var (
	_ observability.DragHooks      = (*counters)(nil)
	_ observability.ContainerHooks = (*counters)(nil)
)
