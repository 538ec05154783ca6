package schedule

import "time"

// Status is the urgency bucket of a due date.
type Status string

const (
	StatusSettled  Status = "settled"
	StatusOverdue  Status = "overdue"
	StatusDueToday Status = "dueToday"
	StatusDueSoon  Status = "dueSoon"
	StatusNormal   Status = "normal"
)

// The "due soon" window differs by consumer: list filtering and the
// dashboard use a week, card emphasis uses three days. Both are valid;
// Classify takes the threshold as a parameter.
const (
	SoonThresholdList     = 7
	SoonThresholdEmphasis = 3
)

// Urgency is the classification of a due date relative to a reference day.
// Days is days past due for StatusOverdue, days left for StatusDueSoon and
// StatusNormal, and zero otherwise.
type Urgency struct {
	Status Status
	Days   int
}

// Classify buckets a due date. It is a pure function of its inputs; today is
// expected to be a local-midnight date (see utils.Today).
func Classify(today, dueDate time.Time, settled bool, soonThreshold int) Urgency {
	if settled {
		return Urgency{Status: StatusSettled}
	}

	diffDays := DaysBetween(today, dueDate)
	switch {
	case diffDays < 0:
		return Urgency{Status: StatusOverdue, Days: -diffDays}
	case diffDays == 0:
		return Urgency{Status: StatusDueToday}
	case diffDays <= soonThreshold:
		return Urgency{Status: StatusDueSoon, Days: diffDays}
	default:
		return Urgency{Status: StatusNormal, Days: diffDays}
	}
}
