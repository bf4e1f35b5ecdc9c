package schedule

import "time"

// WorkSchedule is the planned working week for the site. Rest days feed
// the holiday resolver together with the explicit holiday calendar.
type WorkSchedule struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	WorkStart string    `json:"work_start"`
	WorkEnd   string    `json:"work_end"`
	RestDays  []int     `json:"rest_days"` // 1=Monday ... 7=Sunday
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
