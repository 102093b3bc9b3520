package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tcal/pkg/commands/options"
	"tableflip.dev/tcal/pkg/runner/printer"
)

func addPrint(topLevel *cobra.Command, co *options.ColorOptions) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "print [month year]",
		Short: "Print a month without entering the full-screen view",
		Example: `
tcal print
tcal print 2 2024
`,
		Args: func(cmd *cobra.Command, args []string) error {
			return do.Parse(args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := printer.Print{
				Calendar: do.Calendar(nil),
				Color:    co.Enabled(out),
				Out:      out,
			}
			return p.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
