// Package schedule provides calendar arithmetic for recurring bill due dates.
//
// All functions operate on civil dates: the time-of-day and location of any
// time.Time passed in are ignored, and returned dates are always UTC midnight.
package schedule

import "time"

// MinDayOfMonth and MaxDayOfMonth bound the configurable due day for a
// recurring bill. A day above the length of a given month is clamped to that
// month's last day rather than rejected.
const (
	MinDayOfMonth = 1
	MaxDayOfMonth = 31
)

// ValidDayOfMonth reports whether day is a usable recurring due day.
func ValidDayOfMonth(day int) bool {
	return day >= MinDayOfMonth && day <= MaxDayOfMonth
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay reduces day to the last day of the given month when the month is
// shorter than day, and returns day unchanged otherwise.
func ClampDay(day, year int, month time.Month) int {
	if last := DaysInMonth(year, month); day > last {
		return last
	}
	return day
}

// DateOnly strips the time-of-day and location from t, returning the civil
// date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FirstOccurrenceOnOrAfter returns the first occurrence of dayOfMonth strictly
// after ref. The candidate in ref's own month is clamped to the month length;
// if it falls on or before ref's civil date the occurrence rolls forward to
// the following month, clamped again. A due day equal to ref itself is rolled
// forward, so the result is never ref.
func FirstOccurrenceOnOrAfter(dayOfMonth int, ref time.Time) time.Time {
	ref = DateOnly(ref)
	year, month := ref.Year(), ref.Month()

	day := ClampDay(dayOfMonth, year, month)
	candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if candidate.After(ref) {
		return candidate
	}

	year, month = nextMonth(year, month)
	day = ClampDay(dayOfMonth, year, month)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AdvanceOneMonth moves current exactly one calendar month forward and sets
// the day to dayOfMonth clamped to the target month's length. It deliberately
// does not compare the result against today: advancing a paid bill's cycle is
// a separate concern from catching a stale bill up to the present, which is
// handled by the monthly reset sweep.
func AdvanceOneMonth(current time.Time, dayOfMonth int) time.Time {
	current = DateOnly(current)
	year, month := nextMonth(current.Year(), current.Month())
	day := ClampDay(dayOfMonth, year, month)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// nextMonth returns the year/month pair one calendar month after the given
// one. Plain year/month arithmetic is used instead of time.AddDate, whose
// day-overflow normalization would skip short months (Jan 31 + 1 month
// becoming Mar 2 or Mar 3).
func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
