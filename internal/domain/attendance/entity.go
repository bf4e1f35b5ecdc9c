package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session is one contiguous block of time a worker spent on one project
// within a single day. Start and End are clock times in "15:04" format on
// the record's date; overnight sessions are not supported.
type Session struct {
	ProjectID string  `json:"project_id"`
	Start     string  `json:"start"`
	End       string  `json:"end"`
	Duration  float64 `json:"duration"`
}

// Record is one worker-day. TotalHours is the sum of session durations.
// Wage is computed once at save time from the worker's rates at that
// moment and persisted as-is; later rate changes never rewrite it.
type Record struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	WorkerID      string          `json:"worker_id"`
	Sessions      []Session       `json:"sessions"`
	TotalHours    float64         `json:"total_hours"`
	IsHoliday     bool            `json:"is_holiday"`
	HolidayReason string          `json:"holiday_reason,omitempty"`
	Wage          decimal.Decimal `json:"wage"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
