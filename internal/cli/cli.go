package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackshift/pkg/board"
	"github.com/matzehuels/stackshift/pkg/buildinfo"
	"github.com/matzehuels/stackshift/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "stackshift"

	// defaultBoardFile is where init writes when no file is given.
	defaultBoardFile = "board.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Flags are parsed before any subcommand runs: --verbose raises the log level
// and --config selects the configuration file.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stackshift reorders card lists by drag and drop",
		Long:         `Stackshift is a terminal board for moving cards within and between lists with the mouse. Boards are plain TOML files; scripted drags can be replayed headlessly.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			c.Logger.Debug("loaded config", "path", c.configPath, "lift_scale", cfg.Engine.LiftScale, "frame_rate", cfg.UI.FrameRate)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/stackshift/config.toml)")

	// Register all subcommands
	root.AddCommand(c.boardCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.initCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Boards
// =============================================================================

// loadBoard reads path, or builds the configured sample board when path is
// empty.
func (c *CLI) loadBoard(path string) (*board.Board, error) {
	if path == "" {
		return board.Sample(c.Config.UI.SampleLists, c.Config.UI.SampleCards), nil
	}
	return board.Load(path)
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
