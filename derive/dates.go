// Package derive holds the pure read-side computations of the diary: homework
// filtering and sorting, schedule overlap rules, reminder grouping, dashboard
// aggregation and analytics mapping. Functions here take snapshots plus an
// explicit "now" and never touch storage, so they stay reentrant and trivially
// testable.
package derive

import (
	"math"
	"time"
)

var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// StartOfDay returns midnight of t's calendar day, keeping t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseWhen parses an RFC3339 instant or a bare calendar date. Date-only
// values are anchored to local midnight. Returns the zero time for anything
// unparseable, including the empty string; callers treat that as "no instant"
// so one bad record never breaks a whole collection.
func ParseWhen(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range whenLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// IsFutureDate reports whether value parses to an instant strictly after now.
// Unparseable input is never in the future.
func IsFutureDate(value string, now time.Time) bool {
	t := ParseWhen(value)
	return !t.IsZero() && t.After(now)
}

// IsPastDeadline compares calendar days only: a deadline is past once its day
// has fully elapsed, not at the first sub-day moment.
func IsPastDeadline(deadline string, now time.Time) bool {
	d := ParseWhen(deadline)
	if d.IsZero() {
		return false
	}
	return StartOfDay(d).Before(StartOfDay(now))
}

// DaysBetween counts whole calendar days from from's day to to's day.
// Negative when to is earlier.
func DaysBetween(from, to time.Time) int {
	diff := StartOfDay(to).Sub(StartOfDay(from))
	return int(math.Round(diff.Hours() / 24))
}
