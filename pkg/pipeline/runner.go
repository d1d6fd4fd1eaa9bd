package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackshift/pkg/anim"
	"github.com/matzehuels/stackshift/pkg/board"
	"github.com/matzehuels/stackshift/pkg/collection"
	"github.com/matzehuels/stackshift/pkg/config"
	"github.com/matzehuels/stackshift/pkg/dnd"
	"github.com/matzehuels/stackshift/pkg/geom"
	"github.com/matzehuels/stackshift/pkg/gesture"
	"github.com/matzehuels/stackshift/pkg/loop"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger handed to the manager and every column.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCanvas sets where drag proxies are drawn.
func WithCanvas(c dnd.Canvas) Option {
	return func(r *Runner) { r.canvas = c }
}

// Runner owns one board's engine: loop, animator, manager, recognizer and a
// column per list. It is not safe for concurrent use; every call must come
// from the goroutine that drives the loop.
type Runner struct {
	Board      *board.Board
	Loop       *loop.Loop
	Animator   *anim.Animator
	Manager    *dnd.Manager
	Recognizer *gesture.Recognizer
	Columns    []*collection.Collection

	cfg    config.Config
	canvas dnd.Canvas
	logger *log.Logger
	width  int
	height int
	stats  Stats
}

// NewRunner wires b into a fresh engine tuned by cfg and lays it out for
// the default screen size.
func NewRunner(b *board.Board, cfg config.Config, opts ...Option) *Runner {
	r := &Runner{
		Board:  b,
		Loop:   loop.New(),
		cfg:    cfg,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	r.Animator = anim.New(r.Loop, cfg.FrameInterval())
	r.Manager = dnd.NewManager(r.canvas, r.Animator,
		dnd.WithConfig(cfg.Manager()),
		dnd.WithLogger(r.logger),
		dnd.WithDelegate(r),
		dnd.WithClock(r.Loop),
	)

	layout := collection.FlowLayout{
		Axis:     collection.Vertical,
		CellSize: geom.Size{W: float64(cfg.UI.ColumnWidth), H: float64(cfg.UI.CardHeight)},
	}
	for _, l := range b.Lists {
		c := collection.New(l.Name, l, r.Loop, r.Animator,
			collection.WithLayout(layout),
			collection.WithAutoscroll(cfg.Autoscroll()),
			collection.WithAnimationDuration(cfg.Engine.AnimationDuration),
			collection.WithLogger(r.logger),
		)
		r.Columns = append(r.Columns, c)
		r.Manager.Register(c)
	}

	r.Recognizer = gesture.New(r.Loop, r.Manager, cfg.Recognizer())
	r.Resize(DefaultWidth, DefaultHeight)
	return r
}

// Config returns the tuning the runner was built with.
func (r *Runner) Config() config.Config { return r.cfg }

// =============================================================================
// Layout
// =============================================================================

// Resize lays the columns out left to right for a width x height screen,
// in terminal cells. Columns keep at least one card's height.
func (r *Runner) Resize(width, height int) {
	r.width, r.height = width, height
	ui := r.cfg.UI
	h := max(height-HeaderRows-FooterRows, ui.CardHeight)
	for i, c := range r.Columns {
		x := ui.Gap + i*(ui.ColumnWidth+ui.Gap)
		c.SetFrame(geom.R(float64(x), HeaderRows, float64(ui.ColumnWidth), float64(h)))
	}
}

// Size returns the screen size set by the last Resize.
func (r *Runner) Size() (width, height int) { return r.width, r.height }

// ColumnAt returns the column under p in screen space.
func (r *Runner) ColumnAt(p geom.Point) (*collection.Collection, bool) {
	for _, c := range r.Columns {
		if c.Frame().Contains(p) {
			return c, true
		}
	}
	return nil, false
}

// =============================================================================
// Input
// =============================================================================

func (r *Runner) Press(x, y float64)   { r.Recognizer.Press(geom.Pt(x, y)) }
func (r *Runner) Move(x, y float64)    { r.Recognizer.Move(geom.Pt(x, y)) }
func (r *Runner) Release(x, y float64) { r.Recognizer.Release(geom.Pt(x, y)) }

// Abort cancels the gesture in progress, if any.
func (r *Runner) Abort() { r.Recognizer.Abort() }

// =============================================================================
// Time
// =============================================================================

// Advance moves virtual time forward by d, running everything that falls due.
func (r *Runner) Advance(d time.Duration) { r.Loop.Advance(d) }

// Busy reports whether anything is still moving: a proxy landing, a
// mutation batch settling or a column autoscrolling.
func (r *Runner) Busy() bool {
	if r.Manager.State() == dnd.StateDropping {
		return true
	}
	for _, c := range r.Columns {
		if c.Animating() || c.Autoscrolling() {
			return true
		}
	}
	return false
}

// Settle advances one frame at a time until nothing is busy, or limit has
// passed.
func (r *Runner) Settle(limit time.Duration) {
	step := r.cfg.FrameInterval()
	for t := time.Duration(0); t < limit && r.Busy(); t += step {
		r.Advance(step)
	}
}

// =============================================================================
// Replay
// =============================================================================

// Replay feeds s through the engine, then settles. The context is checked
// between steps.
func (r *Runner) Replay(ctx context.Context, s *Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if s.Width > 0 || s.Height > 0 {
		w, h := r.width, r.height
		if s.Width > 0 {
			w = s.Width
		}
		if s.Height > 0 {
			h = s.Height
		}
		r.Resize(w, h)
	}

	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if st.Wait > 0 {
			r.Advance(st.Wait)
		}
		switch st.Action {
		case ActionPress:
			r.Press(st.X, st.Y)
		case ActionMove:
			r.Move(st.X, st.Y)
		case ActionRelease:
			r.Release(st.X, st.Y)
		case ActionAbort:
			r.Abort()
		}
		r.stats.Steps++
		r.logger.Debug("replay step", "n", i+1, "action", st.Action, "x", st.X, "y", st.Y, "state", r.Manager.State())
	}
	r.Settle(DefaultSettle)

	return &Result{Titles: r.Board.Snapshot(), Stats: r.Stats()}, nil
}

// Stats returns the counters so far.
func (r *Runner) Stats() Stats {
	s := r.stats
	s.Elapsed = r.Loop.Now()
	return s
}

// =============================================================================
// dnd.Delegate
// =============================================================================

// DidStartDragging counts the session and forwards to the board.
func (r *Runner) DidStartDragging(s *dnd.Session) {
	r.stats.Sessions++
	r.Board.DidStartDragging(s)
}

// DidEndDragging counts the outcome and forwards to the board.
func (r *Runner) DidEndDragging(s *dnd.Session) {
	if s.Cancelled() {
		r.stats.Cancels++
	} else {
		r.stats.Drops++
	}
	r.Board.DidEndDragging(s)
}

var _ dnd.Delegate = (*Runner)(nil)
