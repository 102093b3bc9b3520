package calendar

import "time"

// ValidMonth reports whether month is in [1,12].
func ValidMonth(month uint) bool {
	return month >= 1 && month <= 12
}

// MonthName returns the English name of month, or "" when it is out of range.
func MonthName(month uint) string {
	if !ValidMonth(month) {
		return ""
	}
	return time.Month(month).String()
}

// WeekdayAbbrev returns the three letter name of weekday i, 0 being Sunday.
func WeekdayAbbrev(i int) string {
	return time.Weekday(i % 7).String()[:3]
}
