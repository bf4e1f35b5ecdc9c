package project

import (
	"time"

	"github.com/shopspring/decimal"
)

type Project struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	TargetBudget decimal.Decimal `json:"target_budget"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusCompleted),
	string(StatusPending),
}
