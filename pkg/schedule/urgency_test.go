package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local)
	day := func(offset int) time.Time {
		return today.AddDate(0, 0, offset)
	}

	tests := []struct {
		name      string
		dueDate   time.Time
		settled   bool
		threshold int
		want      Urgency
	}{
		{
			name:      "settled wins over any due date",
			dueDate:   day(-30),
			settled:   true,
			threshold: SoonThresholdList,
			want:      Urgency{Status: StatusSettled},
		},
		{
			name:      "overdue reports days past",
			dueDate:   day(-3),
			threshold: SoonThresholdList,
			want:      Urgency{Status: StatusOverdue, Days: 3},
		},
		{
			name:      "due exactly today is due today, not overdue",
			dueDate:   day(0),
			threshold: SoonThresholdList,
			want:      Urgency{Status: StatusDueToday},
		},
		{
			name:      "within week threshold is due soon",
			dueDate:   day(7),
			threshold: SoonThresholdList,
			want:      Urgency{Status: StatusDueSoon, Days: 7},
		},
		{
			name:      "past week threshold is normal",
			dueDate:   day(8),
			threshold: SoonThresholdList,
			want:      Urgency{Status: StatusNormal, Days: 8},
		},
		{
			name:      "emphasis threshold narrows the soon window",
			dueDate:   day(5),
			threshold: SoonThresholdEmphasis,
			want:      Urgency{Status: StatusNormal, Days: 5},
		},
		{
			name:      "emphasis threshold still catches close dates",
			dueDate:   day(3),
			threshold: SoonThresholdEmphasis,
			want:      Urgency{Status: StatusDueSoon, Days: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(today, tt.dueDate, tt.settled, tt.threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}
