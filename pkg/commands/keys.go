package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tcal/pkg/runner/keys"
)

func addKeys(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Print the key bindings of the calendar",
		Example: `
tcal keys
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := keys.Keys{Out: cmd.OutOrStdout()}
			return k.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
