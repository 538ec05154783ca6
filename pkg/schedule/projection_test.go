package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSuggestedContribution(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	day := func(offset int) time.Time {
		return today.AddDate(0, 0, offset)
	}

	tests := []struct {
		name      string
		remaining float64
		target    time.Time
		freq      Frequency
		want      float64
	}{
		{
			name:      "rounds up so the goal is never missed",
			remaining: 1000,
			target:    day(21), // exactly 3 weekly periods
			freq:      Weekly,
			want:      334, // ceil(1000/3), not 333
		},
		{
			name:      "single period pays everything",
			remaining: 500,
			target:    day(7),
			freq:      Weekly,
			want:      500,
		},
		{
			name:      "biweekly halves the period count",
			remaining: 1000,
			target:    day(28),
			freq:      BiWeekly,
			want:      500,
		},
		{
			name:      "monthly uses the average month length",
			remaining: 1200,
			target:    day(365), // 365/(365.25/12) ≈ 11.99 periods
			freq:      Monthly,
			want:      101,
		},
		{
			name:      "annual uses the average year length",
			remaining: 1000,
			target:    day(731), // just over 2 average years
			freq:      Annual,
			want:      500,
		},
		{
			name:      "target today is invalid",
			remaining: 1000,
			target:    day(0),
			freq:      Weekly,
			want:      0,
		},
		{
			name:      "target in the past is invalid",
			remaining: 1000,
			target:    day(-1),
			freq:      Weekly,
			want:      0,
		},
		{
			name:      "nothing remaining needs no plan",
			remaining: 0,
			target:    day(30),
			freq:      Weekly,
			want:      0,
		},
		{
			name:      "overfunded goal needs no plan",
			remaining: -50,
			target:    day(30),
			freq:      Weekly,
			want:      0,
		},
		{
			name:      "one-time frequency has no periodic plan",
			remaining: 1000,
			target:    day(30),
			freq:      OneTime,
			want:      0,
		},
		{
			name:      "less than one period suggests more than the remainder",
			remaining: 700,
			target:    day(3), // 3/7 of a weekly period
			freq:      Weekly,
			want:      1634, // ceil(700 / (3/7))
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestedContribution(tt.remaining, today, tt.target, tt.freq)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestedContribution_Idempotent(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	target := today.AddDate(0, 0, 60)

	first := SuggestedContribution(2500, today, target, BiWeekly)
	second := SuggestedContribution(2500, today, target, BiWeekly)
	assert.Equal(t, first, second)
	assert.Greater(t, first, 0.0)
}
