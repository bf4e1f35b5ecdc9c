package purchase

import "time"

// Tier is the urgency bucket a debt's due date falls into. The same
// classification drives the debt aging report and the payment workflow.
type Tier string

const (
	TierOverdue  Tier = "overdue"
	TierToday    Tier = "today"
	TierUrgent   Tier = "urgent"
	TierUpcoming Tier = "upcoming"
	TierNormal   Tier = "normal"
	TierNone     Tier = "none"
)

// TierInfo carries the display label and styling class for a tier.
type TierInfo struct {
	Tier  Tier   `json:"tier"`
	Label string `json:"label"`
	Class string `json:"class"`
}

var tierInfos = map[Tier]TierInfo{
	TierOverdue:  {Tier: TierOverdue, Label: "Jatuh tempo terlewat", Class: "badge-danger"},
	TierToday:    {Tier: TierToday, Label: "Jatuh tempo hari ini", Class: "badge-danger"},
	TierUrgent:   {Tier: TierUrgent, Label: "Segera jatuh tempo", Class: "badge-warning"},
	TierUpcoming: {Tier: TierUpcoming, Label: "Minggu ini", Class: "badge-info"},
	TierNormal:   {Tier: TierNormal, Label: "Masih lama", Class: "badge-secondary"},
	TierNone:     {Tier: TierNone, Label: "Tanpa jatuh tempo", Class: "badge-light"},
}

// ClassifyDueDate maps a due date to its urgency tier relative to today.
// Boundaries: due == today is "today", 1..3 days out is "urgent", 4..7 is
// "upcoming", more than 7 is "normal". A zero due date means "none".
func ClassifyDueDate(due, today time.Time) TierInfo {
	if due.IsZero() {
		return tierInfos[TierNone]
	}

	due = truncateDay(due)
	today = truncateDay(today)
	days := int(due.Sub(today).Hours() / 24)

	switch {
	case days < 0:
		return tierInfos[TierOverdue]
	case days == 0:
		return tierInfos[TierToday]
	case days <= 3:
		return tierInfos[TierUrgent]
	case days <= 7:
		return tierInfos[TierUpcoming]
	default:
		return tierInfos[TierNormal]
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
