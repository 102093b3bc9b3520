package calendar

import (
	"math"
	"testing"
	"time"
)

func fixed(year int, month time.Month, day int) Clock {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.Local)
	}
}

var oct19 = fixed(2026, time.October, 19)

func TestNowUsesClock(t *testing.T) {
	c := Now(oct19)
	want := Date{Day: 19, Month: 10, Year: 2026}
	if c.Date() != want {
		t.Fatalf("expected %v, got %v", want, c.Date())
	}
	if c.Today != want {
		t.Fatalf("expected today %v, got %v", want, c.Today)
	}
}

func TestAtKeepsExplicitDay(t *testing.T) {
	c := At(5, 3, 1999, oct19)
	if c.Day != 5 || c.Month != 3 || c.Year != 1999 {
		t.Fatalf("unexpected display date %v", c.Date())
	}
	if c.Today.Year != 2026 {
		t.Fatalf("expected today to come from the clock, got %v", c.Today)
	}
}

func TestIsLeapYear(t *testing.T) {
	for y := uint(0); y <= 4000; y++ {
		want := y%400 == 0 || (y%100 != 0 && y%4 == 0)
		c := At(0, 1, y, oct19)
		if got := c.IsLeapYear(); got != want {
			t.Fatalf("year %d: expected %v, got %v", y, want, got)
		}
	}
}

func TestMaxDaysInMonth(t *testing.T) {
	for _, y := range []uint{0, 1, 1900, 2000, 2023, 2024, 2100} {
		c := At(0, 1, y, oct19)
		for m := uint(1); m <= 12; m++ {
			var want uint
			switch m {
			case 1, 3, 5, 7, 8, 10, 12:
				want = 31
			case 4, 6, 9, 11:
				want = 30
			case 2:
				want = 28
				if c.IsLeapYear() {
					want = 29
				}
			}
			if got := c.MaxDaysInMonth(m); got != want {
				t.Fatalf("%d-%02d: expected %d, got %d", y, m, want, got)
			}
		}
	}
}

func TestMaxDaysInFebruary(t *testing.T) {
	if got := At(0, 2, 2024, oct19).MaxDaysInMonth(2); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
	if got := At(0, 2, 2023, oct19).MaxDaysInMonth(2); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
}

func TestWeekdayOffsetMatchesTimePackage(t *testing.T) {
	for y := 1; y <= 2500; y++ {
		for m := time.January; m <= time.December; m++ {
			c := At(0, uint(m), uint(y), oct19)
			want := uint(time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).Weekday())
			if got := c.WeekdayOffsetOfFirst(); got != want {
				t.Fatalf("%d-%02d: expected %d, got %d", y, m, want, got)
			}
		}
	}
}

func TestWeekdayOffsetKnownPoints(t *testing.T) {
	tests := []struct {
		month, year uint
		want        uint
	}{
		{1, 1, 1},     // Monday
		{1, 0, 6},     // Saturday
		{1, 2000, 6},  // Saturday
		{1, 2024, 1},  // Monday
		{10, 2026, 4}, // Thursday
	}
	for _, tt := range tests {
		if got := At(0, tt.month, tt.year, oct19).WeekdayOffsetOfFirst(); got != tt.want {
			t.Fatalf("%d-%02d: expected %d, got %d", tt.year, tt.month, tt.want, got)
		}
	}
}

func TestWeekdayOffsetFollowsMonthLength(t *testing.T) {
	c := At(0, 1, 1583, oct19)
	for i := 0; i < 12*900; i++ {
		got := c.WeekdayOffsetOfFirst()
		if got > 6 {
			t.Fatalf("offset %d out of range at %d-%02d", got, c.Year, c.Month)
		}
		next := (got + c.MaxDaysInMonth(c.Month)) % 7
		c.AdvanceMonth()
		if c.WeekdayOffsetOfFirst() != next {
			t.Fatalf("%d-%02d: expected %d, got %d", c.Year, c.Month, next, c.WeekdayOffsetOfFirst())
		}
	}
}

func TestAdvanceMonthTwelveTimes(t *testing.T) {
	for m := uint(1); m <= 12; m++ {
		c := At(0, m, 1987, oct19)
		for i := 0; i < 12; i++ {
			c.AdvanceMonth()
		}
		if c.Month != m || c.Year != 1988 {
			t.Fatalf("from month %d: expected %d/1988, got %d/%d", m, m, c.Month, c.Year)
		}
	}
}

func TestRetreatMonthInvertsAdvance(t *testing.T) {
	for m := uint(1); m <= 12; m++ {
		for _, y := range []uint{1, 1999, 2026} {
			c := At(0, m, y, oct19)
			c.AdvanceMonth()
			c.RetreatMonth()
			if c.Month != m || c.Year != y {
				t.Fatalf("expected %d/%d, got %d/%d", m, y, c.Month, c.Year)
			}
		}
	}
}

func TestAdvanceMonthAcrossYearEnd(t *testing.T) {
	c := At(0, 12, 2023, oct19)
	c.AdvanceMonth()
	if c.Month != 1 || c.Year != 2024 {
		t.Fatalf("expected 1/2024, got %d/%d", c.Month, c.Year)
	}
	if c.Day != 0 {
		t.Fatalf("expected no focused day, got %d", c.Day)
	}

	c = At(0, 12, 2023, fixed(2024, time.January, 7))
	c.AdvanceMonth()
	if c.Day != 7 {
		t.Fatalf("expected focused day 7, got %d", c.Day)
	}
}

func TestYearFloor(t *testing.T) {
	c := At(0, 6, 0, oct19)
	c.RetreatYear()
	if c.Year != 0 || c.Month != 6 {
		t.Fatalf("expected 6/0, got %d/%d", c.Month, c.Year)
	}

	c = At(0, 1, 0, oct19)
	c.RetreatMonth()
	if c.Month != 12 || c.Year != 0 {
		t.Fatalf("expected 12/0, got %d/%d", c.Month, c.Year)
	}
}

func TestYearCeiling(t *testing.T) {
	c := At(0, 5, math.MaxUint, oct19)
	c.AdvanceYear()
	if c.Year != math.MaxUint {
		t.Fatalf("expected year to saturate, got %d", c.Year)
	}

	c = At(0, 12, math.MaxUint, oct19)
	c.AdvanceMonth()
	if c.Month != 1 || c.Year != math.MaxUint {
		t.Fatalf("expected 1/%d, got %d/%d", uint(math.MaxUint), c.Month, c.Year)
	}
}

func TestDaySnap(t *testing.T) {
	steps := map[string]func(*Calendar){
		"AdvanceMonth": (*Calendar).AdvanceMonth,
		"RetreatMonth": (*Calendar).RetreatMonth,
		"AdvanceYear":  (*Calendar).AdvanceYear,
		"RetreatYear":  (*Calendar).RetreatYear,
	}
	for name, step := range steps {
		c := At(3, 2, 2020, oct19)
		for i := 0; i < 200; i++ {
			step(c)
			onToday := c.Month == c.Today.Month && c.Year == c.Today.Year
			if onToday && c.Day != c.Today.Day {
				t.Fatalf("%s: expected day %d on %d/%d, got %d", name, c.Today.Day, c.Month, c.Year, c.Day)
			}
			if !onToday && c.Day != 0 {
				t.Fatalf("%s: expected no focused day on %d/%d, got %d", name, c.Month, c.Year, c.Day)
			}
		}
	}
}

func TestDaySnapOnYearStep(t *testing.T) {
	c := At(0, 10, 2025, oct19)
	c.AdvanceYear()
	if c.Day != 19 {
		t.Fatalf("expected 19, got %d", c.Day)
	}
	c.AdvanceYear()
	if c.Day != 0 {
		t.Fatalf("expected 0, got %d", c.Day)
	}
	c.RetreatYear()
	if c.Day != 19 {
		t.Fatalf("expected 19, got %d", c.Day)
	}
}

func TestJumpToToday(t *testing.T) {
	c := At(0, 2, 1700, oct19)
	c.AdvanceYear()
	c.RetreatMonth()
	c.JumpToToday()
	if c.Date() != c.Today {
		t.Fatalf("expected %v, got %v", c.Today, c.Date())
	}
}

func TestDateString(t *testing.T) {
	got := Date{Day: 19, Month: 10, Year: 2026}.String()
	if got != "19 October 2026" {
		t.Fatalf("unexpected string %q", got)
	}
}

func TestNames(t *testing.T) {
	if MonthName(7) != "July" {
		t.Fatalf("expected July, got %q", MonthName(7))
	}
	if MonthName(13) != "" {
		t.Fatalf("expected empty name for month 13")
	}
	if WeekdayAbbrev(0) != "Sun" || WeekdayAbbrev(6) != "Sat" {
		t.Fatalf("unexpected weekday names %q %q", WeekdayAbbrev(0), WeekdayAbbrev(6))
	}
}
