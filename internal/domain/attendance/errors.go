package attendance

import "errors"

// Attendance domain errors
var (
	// ErrInvalidTimeRange is returned when a session ends at or before it
	// starts. Overnight sessions are rejected, not wrapped.
	ErrInvalidTimeRange = errors.New("session end must be after start")

	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNoSessions         = errors.New("attendance record needs at least one session")
)
