package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackshift/pkg/errors"
)

// Action is one kind of scripted pointer input.
type Action string

const (
	ActionPress   Action = "press"
	ActionMove    Action = "move"
	ActionRelease Action = "release"
	ActionAbort   Action = "abort"
	ActionWait    Action = "wait"
)

// Step is one scripted input. Wait is virtual time to let pass before the
// action; a "wait" step only lets time pass.
type Step struct {
	Action Action        `toml:"action"`
	X      float64       `toml:"x,omitempty"`
	Y      float64       `toml:"y,omitempty"`
	Wait   time.Duration `toml:"wait,omitempty"`
}

// Script is a replayable drag, in screen cells. Board, when set, names the
// board document to run against, relative to the script's directory.
//
//	board = "board.toml"
//	height = 30
//
//	[[step]]
//	action = "press"
//	x = 4
//	y = 3
//
//	[[step]]
//	action = "move"
//	x = 30
//	y = 3
//	wait = "50ms"
type Script struct {
	Board  string `toml:"board,omitempty"`
	Width  int    `toml:"width,omitempty"`
	Height int    `toml:"height,omitempty"`
	Steps  []Step `toml:"step"`
}

// LoadScript reads and validates a script file.
func LoadScript(path string) (*Script, error) {
	if err := errors.ValidateFilePath(path, ".toml"); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "script %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open script %s", path)
	}
	defer f.Close()

	s, err := DecodeScript(f)
	if err != nil {
		return nil, err
	}
	if s.Board != "" && !filepath.IsAbs(s.Board) {
		s.Board = filepath.Join(filepath.Dir(path), s.Board)
	}
	return s, nil
}

// DecodeScript reads a script from r.
func DecodeScript(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScript, err, "decode script")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidScript, "unknown script key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every step.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New(errors.ErrCodeInvalidScript, "script has no steps")
	}
	if s.Width < 0 || s.Height < 0 {
		return errors.New(errors.ErrCodeInvalidScript, "screen size cannot be negative")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case ActionPress, ActionMove, ActionRelease, ActionAbort, ActionWait:
		default:
			return errors.New(errors.ErrCodeInvalidScript, "step %d: unknown action %q", i+1, st.Action)
		}
		if st.Wait < 0 {
			return errors.New(errors.ErrCodeInvalidScript, "step %d: negative wait", i+1)
		}
	}
	return nil
}
