package holiday

import "github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"

type CreateHolidayRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateHolidayRequest) ToEntity() Entry {
	return Entry{
		Date:   r.Date,
		Reason: r.Reason,
	}
}
