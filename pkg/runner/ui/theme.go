package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes the cell styles of the viewer.
type Theme struct {
	Weekday       tcell.Style
	SundayHeader  tcell.Style
	Day           tcell.Style
	Sunday        tcell.Style
	Focus         tcell.Style
	Year          tcell.Style
	Month         tcell.Style
	MonthSelected tcell.Style
	Controls      tcell.Style
	Today         tcell.Style
}

// Palette holds the hex colors a color theme is built from.
type Palette struct {
	Accent   string
	Header   string
	Selected string
	Dimmed   string
}

// DefaultPalette is red for Sundays and today, yellow for headers and green
// for the displayed month.
var DefaultPalette = Palette{
	Accent:   "#ff5f5f",
	Header:   "#ffd75f",
	Selected: "#87d787",
	Dimmed:   "#808080",
}

// DefaultTheme returns the color theme.
func DefaultTheme() Theme {
	return NewTheme(DefaultPalette)
}

// NewTheme builds a theme from p. Colors that fail to parse fall back to the
// terminal default.
func NewTheme(p Palette) Theme {
	base := tcell.StyleDefault
	accent := base.Foreground(hex(p.Accent))
	header := base.Foreground(hex(p.Header)).Bold(true)
	dimmed := base.Foreground(hex(p.Dimmed))

	return Theme{
		Weekday:       header,
		SundayHeader:  accent.Bold(true),
		Day:           base,
		Sunday:        accent,
		Focus:         base.Bold(true),
		Year:          header,
		Month:         dimmed,
		MonthSelected: base.Foreground(hex(p.Selected)).Bold(true),
		Controls:      dimmed,
		Today:         accent,
	}
}

// MonochromeTheme relies on text attributes only.
func MonochromeTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Weekday:       base.Bold(true),
		SundayHeader:  base.Bold(true).Underline(true),
		Day:           base,
		Sunday:        base.Underline(true),
		Focus:         base.Bold(true).Reverse(true),
		Year:          base.Bold(true),
		Month:         base.Dim(true),
		MonthSelected: base.Bold(true),
		Controls:      base.Dim(true),
		Today:         base.Bold(true),
	}
}

func hex(s string) tcell.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return tcell.ColorDefault
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
