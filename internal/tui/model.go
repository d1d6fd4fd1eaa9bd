package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackshift/pkg/board"
	"github.com/matzehuels/stackshift/pkg/config"
	"github.com/matzehuels/stackshift/pkg/geom"
	"github.com/matzehuels/stackshift/pkg/pipeline"
)

// frameMsg advances the engine clock by one frame.
type frameMsg time.Time

// =============================================================================
// Model
// =============================================================================

// Model is the bubbletea model for one board.
type Model struct {
	runner   *pipeline.Runner
	canvas   *Canvas
	keys     keyMap
	interval time.Duration
	logger   *log.Logger

	pressed  bool
	quitting bool
}

// New builds the engine for b and returns a model ready to run.
func New(b *board.Board, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = log.Default()
	}
	canvas := &Canvas{}
	return Model{
		runner:   pipeline.NewRunner(b, cfg, pipeline.WithCanvas(canvas), pipeline.WithLogger(logger)),
		canvas:   canvas,
		keys:     defaultKeyMap(),
		interval: cfg.FrameInterval(),
		logger:   logger,
	}
}

// Runner exposes the engine, mainly for tests and the final save.
func (m Model) Runner() *pipeline.Runner { return m.runner }

// Board returns the board being edited.
func (m Model) Board() *board.Board { return m.runner.Board }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.runner.Resize(msg.Width, msg.Height)

	case frameMsg:
		m.runner.Advance(m.interval)
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			// Put any card in flight back before the board is saved.
			m.runner.Abort()
			m.runner.Settle(pipeline.DefaultSettle)
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancel()
		}

	case tea.BlurMsg:
		m.cancel()

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) cancel() {
	m.pressed = false
	m.runner.Abort()
}

// =============================================================================
// Mouse
// =============================================================================

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := cellCenter(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if msg.Action != tea.MouseActionPress {
			return
		}
		c, ok := m.runner.ColumnAt(p)
		if !ok {
			return
		}
		step := float64(m.runner.Config().UI.CardHeight)
		if msg.Button == tea.MouseButtonWheelUp {
			step = -step
		}
		c.ScrollBy(0, step)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		m.runner.Press(p.X, p.Y)
	case tea.MouseActionMotion:
		if m.pressed {
			m.runner.Move(p.X, p.Y)
		}
	case tea.MouseActionRelease:
		// Terminals report releases without a button.
		if m.pressed {
			m.pressed = false
			m.runner.Release(p.X, p.Y)
		}
	}
}

// cellCenter maps a terminal cell to the point in its middle.
func cellCenter(x, y int) geom.Point {
	return geom.Pt(float64(x)+0.5, float64(y)+0.5)
}
