package payroll

import "errors"

// Payroll domain errors
var (
	// ErrInvalidHours is returned when a wage is requested for negative
	// hours worked.
	ErrInvalidHours = errors.New("hours worked must not be negative")
)
