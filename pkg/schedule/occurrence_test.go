package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextOccurrence(t *testing.T) {
	day := func(s string) time.Time {
		d, err := ParseDate(s)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name string
		date string
		freq Frequency
		want string
	}{
		{"weekly adds seven days", "2024-03-01", Weekly, "2024-03-08"},
		{"weekly crosses month boundary", "2024-03-28", Weekly, "2024-04-04"},
		{"biweekly adds fourteen days", "2024-03-01", BiWeekly, "2024-03-15"},
		{"monthly keeps day of month", "2024-03-15", Monthly, "2024-04-15"},
		{"monthly clamps jan 31 to leap february", "2024-01-31", Monthly, "2024-02-29"},
		{"monthly clamps jan 31 to non-leap february", "2023-01-31", Monthly, "2023-02-28"},
		{"monthly clamps 31st to 30-day month", "2024-03-31", Monthly, "2024-04-30"},
		{"monthly across year boundary", "2023-12-31", Monthly, "2024-01-31"},
		{"annual keeps the date", "2024-03-01", Annual, "2025-03-01"},
		{"annual clamps feb 29 to non-leap year", "2024-02-29", Annual, "2025-02-28"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(day(tt.date), tt.freq)
			assert.Equal(t, tt.want, FormatDate(got))
		})
	}
}

func TestNextOccurrence_OneTimePanics(t *testing.T) {
	assert.Panics(t, func() {
		NextOccurrence(time.Now(), OneTime)
	})
}
