package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/holiday"
)

func TestHolidayResolver(t *testing.T) {
	resolver := HolidayResolver{RestDays: []time.Weekday{time.Sunday}}
	entries := []holiday.Entry{
		{ID: "h1", Date: "2026-08-17", Reason: "Hari Kemerdekaan"},
	}

	t.Run("calendar entry", func(t *testing.T) {
		// 2026-08-17 is a Monday.
		date := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)
		isHoliday, reason := resolver.Resolve(date, entries)
		assert.True(t, isHoliday)
		assert.Equal(t, "Hari Kemerdekaan", reason)
	})

	t.Run("weekly rest day", func(t *testing.T) {
		date := time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC) // Sunday
		isHoliday, reason := resolver.Resolve(date, entries)
		assert.True(t, isHoliday)
		assert.Equal(t, WeekendReason, reason)
	})

	t.Run("plain working day", func(t *testing.T) {
		date := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC) // Tuesday
		isHoliday, reason := resolver.Resolve(date, entries)
		assert.False(t, isHoliday)
		assert.Empty(t, reason)
	})

	t.Run("calendar reason wins over weekend label", func(t *testing.T) {
		sundayEntries := []holiday.Entry{
			{ID: "h2", Date: "2026-08-16", Reason: "Libur bersama"},
		}
		date := time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC) // Sunday
		isHoliday, reason := resolver.Resolve(date, sundayEntries)
		assert.True(t, isHoliday)
		assert.Equal(t, "Libur bersama", reason)
	})
}
