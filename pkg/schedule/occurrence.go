package schedule

import (
	"fmt"
	"time"
)

// NextOccurrence returns the due date of the cycle after date for a
// recurring frequency. Monthly and Annual steps use the end-of-month clamp:
// when the original day-of-month does not exist in the target month
// (Jan 31 → Feb), the date lands on the last day of the target month
// instead of spilling into the next one.
//
// Calling it with OneTime is a programming error: the contribution applier
// checks the frequency before advancing, so there is no valid next cycle to
// compute.
func NextOccurrence(date time.Time, freq Frequency) time.Time {
	switch freq {
	case Weekly:
		return date.AddDate(0, 0, 7)
	case BiWeekly:
		return date.AddDate(0, 0, 14)
	case Monthly:
		return addMonthsClamped(date, 1)
	case Annual:
		return addMonthsClamped(date, 12)
	default:
		panic(fmt.Sprintf("schedule: no next occurrence for frequency %q", freq))
	}
}

// addMonthsClamped steps forward whole calendar months, clamping the
// day-of-month to the length of the target month. time.Time.AddDate cannot
// be used directly because it normalizes Jan 31 + 1 month to Mar 2/3.
func addMonthsClamped(date time.Time, months int) time.Time {
	y, m, d := date.Date()

	target := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, date.Location())
	if last := daysInMonth(target.Year(), target.Month()); d > last {
		d = last
	}
	return time.Date(target.Year(), target.Month(), d, 0, 0, 0, 0, date.Location())
}

// daysInMonth returns the number of days in the given month; day 0 of the
// following month is its last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
