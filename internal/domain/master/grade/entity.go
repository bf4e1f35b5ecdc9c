package grade

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayGrade is a named hourly-rate preset. The worker form prefills a new
// worker's rate profile from the selected grade; the worker keeps its own
// copy afterwards, so editing a grade never touches existing workers.
type PayGrade struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	NormalRate   decimal.Decimal `json:"normal_rate"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	HolidayRate  decimal.Decimal `json:"holiday_rate"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
