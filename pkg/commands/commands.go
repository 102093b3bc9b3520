package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tcal/pkg/commands/options"
	"tableflip.dev/tcal/pkg/runner/ui"
)

// Build metadata, set with -ldflags "-X tableflip.dev/tcal/pkg/commands.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// New returns the tcal root command.
func New() *cobra.Command {
	do := &options.DateOptions{}
	co := &options.ColorOptions{}

	cmd := &cobra.Command{
		Use:   "tcal [month year]",
		Short: "A month calendar for the terminal.",
		Long: `Opens a full-screen month calendar. Use the arrow keys to move between
months (up/down) and years (left/right), 't' to jump back to today and 'q'
to quit.`,
		Example: `
tcal
tcal 2 2024
`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return do.Parse(args)
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			co.Apply()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := ui.DefaultTheme()
			if co.NoColor {
				theme = ui.MonochromeTheme()
			}
			i := ui.UI{Calendar: do.Calendar(nil), Theme: &theme}
			return i.Do(cmd.Context())
		},
	}
	options.AddColorArgs(cmd, co)

	AddCommands(cmd, co)
	return cmd
}

// AddCommands wires the subcommands onto topLevel.
func AddCommands(topLevel *cobra.Command, co *options.ColorOptions) {
	addVersion(topLevel)
	addKeys(topLevel)
	addPrint(topLevel, co)
}
