package position

import "time"

// Position is a master-data job title (mandor, tukang, kenek, ...).
type Position struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
