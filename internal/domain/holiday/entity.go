package holiday

import "time"

// Entry is an explicit non-working day layered on top of the weekly rest
// days. Date is in "2006-01-02" format, matching how the remote sheet
// stores dates.
type Entry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
