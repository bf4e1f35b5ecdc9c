package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateProfile holds the hourly pay rates for one worker.
// All amounts are in IDR per hour.
type RateProfile struct {
	Normal   decimal.Decimal `json:"normal"`
	Overtime decimal.Decimal `json:"overtime"`
	Holiday  decimal.Decimal `json:"holiday"`
}

type Worker struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	SkillTier      string      `json:"skill_tier"`
	EmploymentType string      `json:"employment_type"`
	Rates          RateProfile `json:"rates"`
	Status         Status      `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusOnLeave  Status = "on_leave"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusOnLeave),
}

type EmploymentType string

const (
	EmploymentDaily    EmploymentType = "daily"
	EmploymentContract EmploymentType = "contract"
)

var EmploymentTypeValues = []string{
	string(EmploymentDaily),
	string(EmploymentContract),
}
