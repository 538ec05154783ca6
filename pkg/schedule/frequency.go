package schedule

import "fmt"

// Frequency is the cycle length of a recurring payment or savings plan.
type Frequency string

const (
	OneTime  Frequency = "OneTime"
	Weekly   Frequency = "Weekly"
	BiWeekly Frequency = "BiWeekly"
	Monthly  Frequency = "Monthly"
	Annual   Frequency = "Annual"
)

// ParseFrequency validates a frequency string coming from the API or the store.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case OneTime, Weekly, BiWeekly, Monthly, Annual:
		return Frequency(s), nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// IsRecurring reports whether a settled item with this frequency should
// advance to a next cycle.
func (f Frequency) IsRecurring() bool {
	return f != OneTime && f != ""
}
