package options

import (
	"errors"
	"fmt"
	"strconv"

	"tableflip.dev/tcal/pkg/calendar"
)

var (
	// ErrMonthRange is returned for a month outside 1 to 12.
	ErrMonthRange = errors.New("month should be in range 1 to 12")
	// ErrMissingYear is returned when only the month is given.
	ErrMissingYear = errors.New("month and year are both required to show a calendar")
)

// DateOptions holds the optional <month> <year> positional arguments.
type DateOptions struct {
	Month uint
	Year  uint
	Set   bool
}

// Parse fills o from args. No arguments leaves o unset.
func (o *DateOptions) Parse(args []string) error {
	switch len(args) {
	case 0:
		o.Set = false
		return nil
	case 1:
		return ErrMissingYear
	case 2:
	default:
		return fmt.Errorf("expected <month> <year>, got %d arguments", len(args))
	}

	month, err := strconv.ParseUint(args[0], 10, 0)
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", args[0], err)
	}
	if !calendar.ValidMonth(uint(month)) {
		return ErrMonthRange
	}
	year, err := strconv.ParseUint(args[1], 10, 0)
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[1], err)
	}

	o.Month, o.Year, o.Set = uint(month), uint(year), true
	return nil
}

// Calendar builds the calendar to open: the given month with no focused day,
// or today.
func (o *DateOptions) Calendar(clock calendar.Clock) *calendar.Calendar {
	if !o.Set {
		return calendar.Now(clock)
	}
	return calendar.At(0, o.Month, o.Year, clock)
}
