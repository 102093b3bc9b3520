// Package calendar holds the date arithmetic behind the month view.
package calendar

import (
	"fmt"
	"math"
	"time"
)

// Clock returns the current instant. A nil Clock means time.Now.
type Clock func() time.Time

// Date is a plain day/month/year triple.
type Date struct {
	Day   uint
	Month uint
	Year  uint
}

// String formats the date as "19 October 2026".
func (d Date) String() string {
	return fmt.Sprintf("%d %s %d", d.Day, MonthName(d.Month), d.Year)
}

// Calendar tracks the displayed month and the day under focus. Day is 0 when
// no day is focused.
type Calendar struct {
	Day   uint
	Month uint
	Year  uint

	// Today is read once from the clock and never refreshed.
	Today Date
}

// At returns a calendar displaying the given date. The month is not checked;
// callers validate it with ValidMonth.
func At(day, month, year uint, clock Clock) *Calendar {
	return &Calendar{
		Day:   day,
		Month: month,
		Year:  year,
		Today: today(clock),
	}
}

// Now returns a calendar displaying today.
func Now(clock Clock) *Calendar {
	t := today(clock)
	return &Calendar{
		Day:   t.Day,
		Month: t.Month,
		Year:  t.Year,
		Today: t,
	}
}

func today(clock Clock) Date {
	if clock == nil {
		clock = time.Now
	}
	now := clock().Local()
	year := now.Year()
	if year < 0 {
		year = 0
	}
	return Date{Day: uint(now.Day()), Month: uint(now.Month()), Year: uint(year)}
}

// Date returns the displayed date.
func (c *Calendar) Date() Date {
	return Date{Day: c.Day, Month: c.Month, Year: c.Year}
}

// JumpToToday moves the display back to today.
func (c *Calendar) JumpToToday() {
	c.Day, c.Month, c.Year = c.Today.Day, c.Today.Month, c.Today.Year
}

// IsLeapYear reports whether the displayed year is a Gregorian leap year.
func (c *Calendar) IsLeapYear() bool {
	return IsLeap(c.Year)
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year uint) bool {
	return year%400 == 0 || year%100 != 0 && year%4 == 0
}

// MaxDaysInMonth returns the length of month in the displayed year.
func (c *Calendar) MaxDaysInMonth(month uint) uint {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if c.IsLeapYear() {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// WeekdayOffsetOfFirst returns the weekday of the 1st of the displayed
// month, 0 being Sunday.
func (c *Calendar) WeekdayOffsetOfFirst() uint {
	// Odd days accumulated by the complete years preceding Year within its
	// 400 year cycle. A full cycle leaves 5.
	var odd uint
	if y := c.Year % 400; y == 0 {
		odd = 5
	} else {
		odd = (y - 1) + (y-1)/4 - (y-1)/100
	}
	for m := uint(1); m < c.Month; m++ {
		odd += c.MaxDaysInMonth(m)
	}
	return (odd + 1) % 7
}

// AdvanceMonth shows the following month.
func (c *Calendar) AdvanceMonth() {
	if c.Month >= 12 {
		c.Month = 1
		c.incYear()
	} else {
		c.Month++
	}
	c.snap()
}

// RetreatMonth shows the preceding month. January of year 0 wraps to
// December of year 0.
func (c *Calendar) RetreatMonth() {
	if c.Month <= 1 {
		c.Month = 12
		c.decYear()
	} else {
		c.Month--
	}
	c.snap()
}

// AdvanceYear shows the same month one year later.
func (c *Calendar) AdvanceYear() {
	c.incYear()
	c.snap()
}

// RetreatYear shows the same month one year earlier, stopping at year 0.
func (c *Calendar) RetreatYear() {
	c.decYear()
	c.snap()
}

func (c *Calendar) incYear() {
	if c.Year < math.MaxUint {
		c.Year++
	}
}

func (c *Calendar) decYear() {
	if c.Year > 0 {
		c.Year--
	}
}

// snap focuses today's day when today's month is displayed and clears the
// focus otherwise. Every navigation step ends here.
func (c *Calendar) snap() {
	if c.Month == c.Today.Month && c.Year == c.Today.Year {
		c.Day = c.Today.Day
	} else {
		c.Day = 0
	}
}
