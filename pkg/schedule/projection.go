package schedule

import (
	"math"
	"time"
)

// Average period lengths used for projection math. These are deliberately
// calendar-approximate: the suggested amounts users have been shown are based
// on them, and switching to exact month walking would change every suggestion.
const (
	avgMonthDays = 365.25 / 12
	avgYearDays  = 365.25
)

// SuggestedContribution computes the per-period amount needed to cover
// remaining by targetDate, saving at the given frequency. The amount is
// rounded up so the goal is reached on or before the target date, never
// missed by rounding down.
//
// It returns 0 when no valid plan exists: nothing remaining, a target date
// on or before today, or a non-periodic frequency. Callers treat 0 as
// "cannot suggest a plan yet", not as an error.
func SuggestedContribution(remaining float64, today, targetDate time.Time, freq Frequency) float64 {
	if remaining <= 0 {
		return 0
	}

	diffDays := DaysBetween(today, targetDate)
	if diffDays <= 0 {
		return 0
	}

	var periods float64
	switch freq {
	case Weekly:
		periods = float64(diffDays) / 7
	case BiWeekly:
		periods = float64(diffDays) / 14
	case Monthly:
		periods = float64(diffDays) / avgMonthDays
	case Annual:
		periods = float64(diffDays) / avgYearDays
	default:
		return 0
	}

	if periods <= 0 {
		return remaining
	}
	return math.Ceil(remaining / periods)
}
