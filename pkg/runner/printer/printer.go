// Package printer writes a single month without taking over the terminal.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"tableflip.dev/tcal/pkg/calendar"
	view "tableflip.dev/tcal/pkg/ui/calendar"
)

// Print renders one month to Out.
type Print struct {
	Calendar *calendar.Calendar
	Color    bool

	// Out defaults to os.Stdout.
	Out io.Writer
}

// Do writes the month. Today is focused when it falls in the printed month.
func (p *Print) Do(_ context.Context) error {
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	c := *p.Calendar
	if c.Month == c.Today.Month && c.Year == c.Today.Year {
		c.JumpToToday()
	}

	opts := view.PlainOptions()
	if p.Color {
		opts = view.DefaultOptions()
	}
	_, err := fmt.Fprintln(out, view.Render(&c, opts))
	return err
}
