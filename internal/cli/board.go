package cli

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackshift/internal/tui"
	"github.com/matzehuels/stackshift/pkg/errors"
)

// boardCommand creates the board command for interactive dragging.
func (c *CLI) boardCommand() *cobra.Command {
	var (
		save    bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:   "board [file]",
		Short: "Open a board and drag cards with the mouse",
		Long: `Open a board file in a full-screen view. Without a file the sample board is shown.

Press and hold a card (or press and move) to pick it up, drop it on any list,
and scroll a list with the mouse wheel. Esc cancels a drag; q quits.`,
		Example: `  stackshift board
  stackshift board todo.toml --save
  stackshift board todo.toml -v --log-file drag.log`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			if save && path == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--save needs a board file")
			}

			b, err := c.loadBoard(path)
			if err != nil {
				return err
			}

			logger, closeLog, err := c.boardLogger(logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			p := tea.NewProgram(tui.New(b, c.Config, logger),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithReportFocus(),
				tea.WithContext(cmd.Context()),
			)
			final, err := p.Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "run board")
			}

			if !save {
				return nil
			}
			m, ok := final.(tui.Model)
			if !ok {
				return errors.New(errors.ErrCodeInternal, "unexpected model %T", final)
			}
			if err := m.Board().Save(path); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Saved board")
			printFile(out, path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "write the board back to its file on quit")
	cmd.Flags().StringVar(&logFile, "log-file", "", "append engine logs to this file")

	return cmd
}

// boardLogger returns the logger for a full-screen session. Writing to the
// terminal would corrupt the view, so logs are dropped unless a file is
// given.
func (c *CLI) boardLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(io.Discard, c.Logger.GetLevel()), func() {}, nil
	}
	if err := errors.ValidateFilePath(path, ""); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "open log file %s", path)
	}
	return newLogger(f, c.Logger.GetLevel()), func() { f.Close() }, nil
}
