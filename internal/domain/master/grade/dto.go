package grade

import (
	"github.com/shopspring/decimal"
	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"
)

type UpsertPayGradeRequest struct {
	Name         string          `json:"name"`
	NormalRate   decimal.Decimal `json:"normal_rate"`
	OvertimeRate decimal.Decimal `json:"overtime_rate"`
	HolidayRate  decimal.Decimal `json:"holiday_rate"`
}

func (r *UpsertPayGradeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.NormalRate.IsNegative() || r.OvertimeRate.IsNegative() || r.HolidayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rates", Message: "rates must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpsertPayGradeRequest) ToEntity() PayGrade {
	return PayGrade{
		Name:         r.Name,
		NormalRate:   r.NormalRate,
		OvertimeRate: r.OvertimeRate,
		HolidayRate:  r.HolidayRate,
	}
}
