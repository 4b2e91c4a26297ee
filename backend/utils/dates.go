package utils

import (
	"math"
	"time"
)

// DateLayout is the calendar-date format used for due dates and activity stamps.
const DateLayout = "2006-01-02"

// ParseDate reads a calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today returns the calendar date of now in loc, as midnight UTC, so it can be
// compared with ParseDate results.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDate renders the calendar date of now in loc.
func FormatDate(now time.Time, loc *time.Location) string {
	return Today(now, loc).Format(DateLayout)
}

// DaysBetween counts whole days from `from` to `to`; negative when `to` is earlier.
func DaysBetween(from, to time.Time) int {
	return int(math.Ceil(to.Sub(from).Hours() / 24))
}
