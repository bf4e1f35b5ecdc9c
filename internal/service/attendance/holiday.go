package attendance

import (
	"time"

	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/holiday"
)

// WeekendReason is the generic label for a weekly rest day without a
// calendar entry.
const WeekendReason = "Akhir pekan"

// HolidayResolver decides whether a date is a non-working day: explicit
// calendar entries first, then the configured weekly rest days.
type HolidayResolver struct {
	RestDays []time.Weekday
}

// Resolve returns the holiday flag and its reason. A calendar entry's
// text wins over the weekend label when both apply.
func (r HolidayResolver) Resolve(date time.Time, entries []holiday.Entry) (bool, string) {
	key := date.Format("2006-01-02")
	for _, e := range entries {
		if e.Date == key {
			return true, e.Reason
		}
	}

	for _, d := range r.RestDays {
		if date.Weekday() == d {
			return true, WeekendReason
		}
	}
	return false, ""
}
