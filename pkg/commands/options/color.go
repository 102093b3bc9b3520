package options

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ColorOptions holds the --no-color flag shared by every command.
type ColorOptions struct {
	NoColor bool
}

// AddColorArgs registers --no-color on cmd and its subcommands.
func AddColorArgs(cmd *cobra.Command, o *ColorOptions) {
	cmd.PersistentFlags().BoolVar(&o.NoColor, "no-color", false,
		"Disable color output.")
}

// Apply propagates the flag to the console color writer.
func (o *ColorOptions) Apply() {
	if o.NoColor {
		color.NoColor = true
	}
}

// Enabled reports whether styled output should be written to w. Only a
// terminal file qualifies.
func (o *ColorOptions) Enabled(w io.Writer) bool {
	if o.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
