package schedule

import (
	"math"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string as a local calendar date (midnight
// local time). Parsing as UTC would shift the day for users west of
// Greenwich, so it is always interpreted in the local zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// FormatDate renders a date in the YYYY-MM-DD storage format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// midnight truncates a timestamp to its civil date. The result is anchored
// in UTC so that day differences are immune to DST transitions.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from one date to another,
// negative when to precedes from. Fractional days round up.
func DaysBetween(from, to time.Time) int {
	diff := midnight(to).Sub(midnight(from))
	return int(math.Ceil(diff.Hours() / 24))
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
