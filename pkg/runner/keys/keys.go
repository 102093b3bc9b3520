// Package keys prints the key bindings of the month viewer.
package keys

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tcal/pkg/runner/ui"
)

// Keys renders the key legend.
type Keys struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do writes one row per binding.
func (k *Keys) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
	for _, b := range ui.Bindings {
		tbl.AddRow(b.Label, b.Help)
	}
	tbl.RightAlign(0)

	_, err := fmt.Fprintln(out, tbl)
	return err
}
