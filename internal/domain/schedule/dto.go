package schedule

import "github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"

type UpsertScheduleRequest struct {
	Name      string `json:"name"`
	WorkStart string `json:"work_start"`
	WorkEnd   string `json:"work_end"`
	RestDays  []int  `json:"rest_days"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if !validator.IsValidClockTime(r.WorkStart) || !validator.IsValidClockTime(r.WorkEnd) {
		errs = append(errs, validator.ValidationError{Field: "work_start", Message: "work times must be in HH:MM format"})
	}
	for _, d := range r.RestDays {
		if d < 1 || d > 7 {
			errs = append(errs, validator.ValidationError{Field: "rest_days", Message: "rest days must be 1 (Monday) through 7 (Sunday)"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpsertScheduleRequest) ToEntity() WorkSchedule {
	return WorkSchedule{
		Name:      r.Name,
		WorkStart: r.WorkStart,
		WorkEnd:   r.WorkEnd,
		RestDays:  r.RestDays,
	}
}
