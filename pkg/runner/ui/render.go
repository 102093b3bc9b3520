package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"tableflip.dev/tcal/pkg/calendar"
)

// draw repaints the whole screen from the calendar and flushes once.
func (u *UI) draw(s tcell.Screen) {
	th := u.theme()
	c := u.Calendar
	w, h := s.Size()
	l := Layout{Width: w, Height: h}

	s.Clear()

	for i := 0; i < 7; i++ {
		style := th.Weekday
		if i == 0 {
			style = th.SundayHeader
		}
		put(s, l.Column(i), l.Line(0), calendar.WeekdayAbbrev(i), style)
	}

	col, line := int(c.WeekdayOffsetOfFirst()), 1
	for d := uint(1); d <= c.MaxDaysInMonth(c.Month); d++ {
		x, y := l.Column(col), l.Line(line)
		num := strconv.FormatUint(uint64(d), 10)
		switch {
		case d == c.Day:
			x = put(s, x, y, "[", th.Day)
			x = put(s, x, y, num, th.Focus)
			put(s, x, y, "]", th.Day)
		case col == 0:
			put(s, x, y, num, th.Sunday)
		default:
			put(s, x, y, num, th.Day)
		}
		col++
		if col == 7 {
			col = 0
			line++
		}
	}

	x, y := l.Year()
	put(s, x, y, strconv.FormatUint(uint64(c.Year), 10), th.Year)
	for i := 0; i < 12; i++ {
		style := th.Month
		if uint(i+1) == c.Month {
			style = th.MonthSelected
		}
		x, y := l.Month(i)
		put(s, x, y, calendar.MonthName(uint(i+1)), style)
	}

	today := c.Today.String()
	x, y = l.Status(len(StatusControls) + len(today))
	x = put(s, x, y, StatusControls, th.Controls)
	put(s, x+1, y, today, th.Today)

	s.Show()
}

// put writes text from (x, y) and returns the column after it.
func put(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
