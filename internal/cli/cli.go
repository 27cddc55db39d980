// Package cli implements the iconkit command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/save2md/iconkit/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "iconkit"

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command. Running it without a
// subcommand generates the icons.
func (c *CLI) RootCommand() *cobra.Command {
	opts := generateOpts{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Generate the Save2MD browser extension icons",
		Long: `iconkit draws the Save2MD toolbar icon at every size a browser extension
manifest asks for (16, 32, 48 and 128 pixels by default) and writes one PNG
per size into the output directory.`,
		Example: `  iconkit
  iconkit --out dist/icons --preview
  iconkit --sizes 16,19,38 --font ./fonts/Inter-Bold.ttf
  iconkit --check`,
		Args:         cobra.NoArgs,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	opts.bind(root)

	root.AddCommand(c.completionCommand())

	return root
}
