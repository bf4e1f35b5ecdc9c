package attendance

import "github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"

type SessionInput struct {
	ProjectID string `json:"project_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

type CreateAttendanceRequest struct {
	Date     string         `json:"date"`
	WorkerID string         `json:"worker_id"`
	Sessions []SessionInput `json:"sessions"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{Field: "worker_id", Message: "worker_id is required"})
	}
	if len(r.Sessions) == 0 {
		errs = append(errs, validator.ValidationError{Field: "sessions", Message: "at least one session is required"})
	}
	for i, s := range r.Sessions {
		if validator.IsEmpty(s.ProjectID) {
			errs = append(errs, validator.ValidationError{Field: "sessions", Message: "session " + validator.Itoa(i) + ": project_id is required"})
		}
		if !validator.IsValidClockTime(s.Start) || !validator.IsValidClockTime(s.End) {
			errs = append(errs, validator.ValidationError{Field: "sessions", Message: "session " + validator.Itoa(i) + ": times must be in HH:MM format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest replaces a record wholesale. Duration, holiday
// flag and wage are recomputed at save time, same as on create.
type UpdateAttendanceRequest = CreateAttendanceRequest
