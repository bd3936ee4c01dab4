package domain

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// msPerDay works on Unix milliseconds, which span any pair of dates
// time.Duration cannot (about 292 years)
const msPerDay = int64(day / time.Millisecond)

// DaysBetween returns the number of whole 24-hour periods between a and b,
// regardless of order. DST shifts are not accounted for.
func DaysBetween(a, b time.Time) int {
	diff := b.UnixMilli() - a.UnixMilli()
	if diff < 0 {
		diff = -diff
	}
	return int(diff / msPerDay)
}

// elapsedDays is the floored day count from date to now; negative when date
// lies in the future
func elapsedDays(date, now time.Time) int {
	diff := now.UnixMilli() - date.UnixMilli()
	days := diff / msPerDay
	if diff%msPerDay < 0 {
		days--
	}
	return int(days)
}

// FormatRelativeDate renders how long ago date was, relative to now.
// Months and years are fixed 30- and 365-day approximations.
func FormatRelativeDate(date, now time.Time) string {
	days := elapsedDays(date, now)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 365:
		return fmt.Sprintf("%d months ago", days/30)
	default:
		return fmt.Sprintf("%d years ago", days/365)
	}
}

// AnniversaryInfo is the derived relationship timespan between a start date
// and a reference "now"
type AnniversaryInfo struct {
	Years           int
	Months          int
	Days            int // TotalDays mod 30, a display remainder
	TotalDays       int
	NextAnniversary time.Time
	DaysUntilNext   int
}

// GetAnniversaryInfo computes the relationship timespan from start to now.
//
// Years and Months are naive calendar subtractions that ignore whether the
// month/day has been reached yet. The next anniversary is the start date moved
// into now's year, or the following year when that moment is not after now,
// so DaysUntilNext is never 0 on the anniversary instant itself.
func GetAnniversaryInfo(start, now time.Time) AnniversaryInfo {
	totalDays := DaysBetween(start, now)

	years := now.Year() - start.Year()
	months := years*12 + int(now.Month()) - int(start.Month())

	next := withYear(start, now.Year())
	if !next.After(now) {
		next = withYear(start, now.Year()+1)
	}

	return AnniversaryInfo{
		Years:           years,
		Months:          months,
		Days:            totalDays % 30,
		TotalDays:       totalDays,
		NextAnniversary: next,
		DaysUntilNext:   DaysBetween(now, next),
	}
}

// withYear moves t into the given year, keeping month, day, clock and zone.
// Feb 29 rolls over to Mar 1 in non-leap years.
func withYear(t time.Time, year int) time.Time {
	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
