package ui

import (
	"github.com/gdamore/tcell/v2"

	"tableflip.dev/tcal/pkg/calendar"
)

// Action is what a key press asks the viewer to do.
type Action int

const (
	// None leaves the calendar alone and skips the redraw.
	None Action = iota
	Quit
	Today
	PrevMonth
	NextMonth
	NextYear
	PrevYear
)

// Binding ties a key to an action.
type Binding struct {
	Key    tcell.Key
	Rune   rune
	Label  string
	Action Action
	Help   string
}

// Bindings is the full key map of the viewer.
var Bindings = []Binding{
	{Key: tcell.KeyRune, Rune: 'q', Label: "q", Action: Quit, Help: "quit"},
	{Key: tcell.KeyRune, Rune: 't', Label: "t", Action: Today, Help: "jump to today"},
	{Key: tcell.KeyUp, Label: "↑", Action: PrevMonth, Help: "previous month"},
	{Key: tcell.KeyDown, Label: "↓", Action: NextMonth, Help: "next month"},
	{Key: tcell.KeyRight, Label: "→", Action: NextYear, Help: "next year"},
	{Key: tcell.KeyLeft, Label: "←", Action: PrevYear, Help: "previous year"},
}

// StatusControls is the hint shown on the status line.
const StatusControls = "Quit - q | Today - t | Change month/year - Arrow keys |"

// ActionFor maps a key event to an action. Keys pressed with any modifier
// map to None.
func ActionFor(ev *tcell.EventKey) Action {
	if ev == nil || ev.Modifiers() != tcell.ModNone {
		return None
	}
	for _, b := range Bindings {
		if ev.Key() != b.Key {
			continue
		}
		if b.Key == tcell.KeyRune && ev.Rune() != b.Rune {
			continue
		}
		return b.Action
	}
	return None
}

// Apply performs a on c. It reports whether the screen needs a redraw.
func Apply(a Action, c *calendar.Calendar) bool {
	switch a {
	case Today:
		c.JumpToToday()
	case PrevMonth:
		c.RetreatMonth()
	case NextMonth:
		c.AdvanceMonth()
	case NextYear:
		c.AdvanceYear()
	case PrevYear:
		c.RetreatYear()
	default:
		return false
	}
	return true
}
