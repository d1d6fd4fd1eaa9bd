package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackshift/pkg/board"
	"github.com/matzehuels/stackshift/pkg/errors"
)

// initCommand creates the init command, which writes a starter board.
func (c *CLI) initCommand() *cobra.Command {
	var (
		force bool
		lists int
		cards int
	)

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the sample board to a file",
		Long:  `Write the sample board (lists of cards titled "list:card") as TOML, ready to edit or open with the board command.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultBoardFile
			if len(args) == 1 {
				path = args[0]
			}
			if fileExists(path) && !force {
				return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
			}
			if !cmd.Flags().Changed("lists") {
				lists = c.Config.UI.SampleLists
			}
			if !cmd.Flags().Changed("cards") {
				cards = c.Config.UI.SampleCards
			}
			if lists < 1 || cards < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "need at least one list and no negative card count")
			}

			if err := board.Sample(lists, cards).Save(path); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "Wrote sample board")
			printFile(out, path)
			printNextStep(out, "Open it", appName+" board "+path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.Flags().IntVar(&lists, "lists", 0, "number of lists (default from config)")
	cmd.Flags().IntVar(&cards, "cards", 0, "cards per list (default from config)")

	return cmd
}
