package purchase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDueDate(t *testing.T) {
	today := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time { return today.AddDate(0, 0, offset) }

	tests := []struct {
		name string
		due  time.Time
		want Tier
	}{
		{"no due date", time.Time{}, TierNone},
		{"yesterday", day(-1), TierOverdue},
		{"long overdue", day(-30), TierOverdue},
		{"due today", day(0), TierToday},
		{"tomorrow", day(1), TierUrgent},
		{"three days out", day(3), TierUrgent},
		{"four days out", day(4), TierUpcoming},
		{"a week out", day(7), TierUpcoming},
		{"eight days out", day(8), TierNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ClassifyDueDate(tt.due, today)
			assert.Equal(t, tt.want, info.Tier)
			assert.NotEmpty(t, info.Label)
			assert.NotEmpty(t, info.Class)
		})
	}
}

func TestClassifyDueDateIgnoresClockTime(t *testing.T) {
	// 23:59 today is still "today", not overdue.
	today := time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, TierToday, ClassifyDueDate(due, today).Tier)
}
