package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/stackshift/pkg/board"
	"github.com/matzehuels/stackshift/pkg/buildinfo"
	"github.com/matzehuels/stackshift/pkg/errors"
	"github.com/matzehuels/stackshift/pkg/observability"
)

// run executes the CLI with args in an isolated config environment.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("STACKSHIFT_CONFIG", "")

	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandVersion(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	if root.Version != buildinfo.Version {
		t.Errorf("Version = %q, want %q", root.Version, buildinfo.Version)
	}
	for _, name := range []string{"board", "replay", "init", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestInitWritesSampleBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.toml")

	out, err := run(t, "init", path, "--lists", "2", "--cards", "4")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample board") {
		t.Errorf("output = %q, want success line", out)
	}

	b, err := board.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(b.Lists) != 2 || b.Cards() != 8 {
		t.Errorf("got %d lists and %d cards, want 2 and 8", len(b.Lists), b.Cards())
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.toml")
	if err := os.WriteFile(path, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := run(t, "init", path)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("err = %v, want INVALID_INPUT", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "keep" {
		t.Error("existing file was modified")
	}

	if _, err := run(t, "init", path, "--force", "--lists", "1", "--cards", "1"); err != nil {
		t.Fatalf("init --force: %v", err)
	}
	if b, err := board.Load(path); err != nil || b.Cards() != 1 {
		t.Errorf("forced init did not write the board: %v", err)
	}
}

const dragScript = `board = "board.toml"

[[step]]
action = "press"
x = 10
y = 6

[[step]]
action = "move"
x = 40
y = 6

[[step]]
action = "release"
x = 40
y = 6
`

func TestReplayPrintsLists(t *testing.T) {
	dir := t.TempDir()
	if err := board.Sample(2, 3).Save(filepath.Join(dir, "board.toml")); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(dir, "drag.toml")
	if err := os.WriteFile(script, []byte(dragScript), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "replay", script)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	for _, want := range []string{"Sample", "List 1", "List 2", "0:1", "1 drops"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if observability.Drag() != (observability.NoopDragHooks{}) {
		t.Error("replay should restore the default hooks")
	}

	// The board file itself is untouched.
	b, err := board.Load(filepath.Join(dir, "board.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Lists[0].Titles(); len(got) != 3 {
		t.Errorf("board file changed: %v", got)
	}
}

func TestReplayMissingScript(t *testing.T) {
	_, err := run(t, "replay", filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExplicitConfigMustExist(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "init", filepath.Join(t.TempDir(), "b.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestConfigFeedsSampleSize(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(cfg, []byte("[ui]\nsample_lists = 4\nsample_cards = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "b.toml")

	if _, err := run(t, "--config", cfg, "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	b, err := board.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Lists) != 4 || b.Cards() != 8 {
		t.Errorf("got %d lists and %d cards, want 4 and 8", len(b.Lists), b.Cards())
	}
}

func TestBoardSaveNeedsFile(t *testing.T) {
	_, err := run(t, "board", "--save")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestCompletion(t *testing.T) {
	out, err := run(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "stackshift") {
		t.Error("bash completion should mention the program name")
	}
}
