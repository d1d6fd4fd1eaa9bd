package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackshift/pkg/pipeline"
)

// replayCommand creates the replay command for headless scripted drags.
func (c *CLI) replayCommand() *cobra.Command {
	var boardPath string

	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Run a scripted drag and print the resulting lists",
		Long: `Run a TOML script of pointer steps against a board, using the same engine
as the interactive view, and print every list afterwards.

Coordinates are screen cells as in the board view. Time is virtual: each
step's wait advances the engine clock without sleeping.

  board = "todo.toml"

  [[step]]
  action = "press"    # press, move, release, abort or wait
  x = 10
  y = 6

  [[step]]
  action = "move"
  x = 40
  y = 6
  wait = "50ms"`,
		Example: `  stackshift replay drag.toml
  stackshift replay drag.toml --board other.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			script, err := pipeline.LoadScript(args[0])
			if err != nil {
				return err
			}
			if boardPath == "" {
				boardPath = script.Board
			}
			b, err := c.loadBoard(boardPath)
			if err != nil {
				return err
			}

			counts := newCounters(logger)
			restore := counts.install()
			defer restore()

			prog := newProgress(logger)
			r := pipeline.NewRunner(b, c.Config, pipeline.WithLogger(logger))
			res, err := r.Replay(cmd.Context(), script)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Replayed %d steps", res.Stats.Steps))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderLists(b))
			printStats(out,
				stat{res.Stats.Sessions, "sessions"},
				stat{res.Stats.Drops, "drops"},
				stat{res.Stats.Cancels, "cancelled"},
				stat{counts.targetChanges, "target changes"},
				stat{counts.mutations, "mutations"},
				stat{counts.skipped, "moves skipped"},
				stat{counts.autoscrolls, "autoscrolls"},
				stat{counts.scrollTicks, "scroll ticks"},
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&boardPath, "board", "", "board file (overrides the script's board; default sample board)")

	return cmd
}
