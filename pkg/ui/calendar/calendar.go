// Package calendar renders a month as a block of text for non-interactive
// output.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	model "tableflip.dev/tcal/pkg/calendar"
)

// Options controls the styling of the rendered month.
type Options struct {
	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style
	SundayStyle lipgloss.Style
	DayStyle    lipgloss.Style
	FocusStyle  lipgloss.Style
	ShowHeader  bool
}

const weekHeader = "Su Mo Tu We Th Fr Sa"

// Render produces a multi-line calendar string for the displayed month of c.
// The focused day, if any, gets FocusStyle.
func Render(c *model.Calendar, opts Options) string {
	if !model.ValidMonth(c.Month) {
		return ""
	}

	width := len(weekHeader)
	title := opts.TitleStyle.Render(fmt.Sprintf("%s %d", model.MonthName(c.Month), c.Year))
	pad := max(0, (width-ansi.PrintableRuneWidth(title))/2)

	lines := []string{strings.Repeat(" ", pad) + title}
	if opts.ShowHeader {
		lines = append(lines, opts.SundayStyle.Render(weekHeader[:2])+" "+opts.HeaderStyle.Render(weekHeader[3:]))
	}

	offset := int(c.WeekdayOffsetOfFirst())
	daysInMonth := int(c.MaxDaysInMonth(c.Month))
	rows := (offset + daysInMonth + 6) / 7
	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, "  ")
				continue
			}
			cells = append(cells, renderDay(c, day, col, opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(c *model.Calendar, day, col int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.DayStyle
	if col == 0 {
		style = opts.SundayStyle
	}
	if uint(day) == c.Day {
		style = style.Inherit(opts.FocusStyle)
	}
	return style.Render(text)
}

// DefaultOptions returns the styling used when writing to a terminal.
func DefaultOptions() Options {
	return Options{
		TitleStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		HeaderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		SundayStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		DayStyle:    lipgloss.NewStyle(),
		FocusStyle:  lipgloss.NewStyle().Bold(true).Reverse(true),
		ShowHeader:  true,
	}
}

// PlainOptions renders without any escape sequences.
func PlainOptions() Options {
	plain := lipgloss.NewStyle()
	return Options{
		TitleStyle:  plain,
		HeaderStyle: plain,
		SundayStyle: plain,
		DayStyle:    plain,
		FocusStyle:  plain,
		ShowHeader:  true,
	}
}
