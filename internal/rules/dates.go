package rules

import "time"

// Day truncates t to a pure calendar date (midnight UTC).
// All rule arithmetic happens at day granularity; keeping every date in UTC
// removes DST offsets from day-difference calculations.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddYears returns d shifted by the given number of years, keeping the same
// month and day. A Feb-29 input whose target year is not a leap year clamps
// to Feb-28 instead of Go's default normalization to Mar-1: the threshold
// birthday of a leapling falls on the last day of February.
func AddYears(d time.Time, years int) time.Time {
	y := d.Year() + years
	if d.Month() == time.February && d.Day() == 29 && !isLeapYear(y) {
		return time.Date(y, time.February, 28, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(y, d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b.
// Negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

func isLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
