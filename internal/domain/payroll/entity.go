package payroll

import "github.com/shopspring/decimal"

// Policy decides whether payroll reports trust the wage snapshotted on
// each attendance record or re-derive it from the worker's current rates
// and the stored hours. The original dashboard did both in different
// screens; here it is a single explicit setting.
type Policy string

const (
	// PolicySnapshot sums the stored wages. Audit-stable: rate changes
	// never retroactively move historical payroll.
	PolicySnapshot Policy = "snapshot"

	// PolicyRederive recomputes wage from current rates x stored hours.
	// Matches the original payroll report behavior.
	PolicyRederive Policy = "rederive"
)

var PolicyValues = []string{
	string(PolicySnapshot),
	string(PolicyRederive),
}

// RateDescriptor is the applicable display rate for a worker-day.
type RateDescriptor struct {
	Label string          `json:"label"`
	Rate  decimal.Decimal `json:"rate"`
}

// RecapRow is one worker's line in the payroll recap for a date range.
type RecapRow struct {
	WorkerID     string          `json:"worker_id"`
	WorkerName   string          `json:"worker_name"`
	Days         int             `json:"days"`
	TotalHours   float64         `json:"total_hours"`
	HolidayHours float64         `json:"holiday_hours"`
	TotalWage    decimal.Decimal `json:"total_wage"`
}

type Recap struct {
	From       string          `json:"from"`
	To         string          `json:"to"`
	Policy     Policy          `json:"policy"`
	Rows       []RecapRow      `json:"rows"`
	GrandTotal decimal.Decimal `json:"grand_total"`
}
