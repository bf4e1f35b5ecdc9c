package worker

import (
	"github.com/shopspring/decimal"
	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Name           string          `json:"name"`
	SkillTier      string          `json:"skill_tier"`
	EmploymentType string          `json:"employment_type"`
	NormalRate     decimal.Decimal `json:"normal_rate"`
	OvertimeRate   decimal.Decimal `json:"overtime_rate"`
	HolidayRate    decimal.Decimal `json:"holiday_rate"`
	Status         string          `json:"status"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.EmploymentType != "" && !validator.IsInSlice(r.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "must be one of daily, contract"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of active, inactive, on_leave"})
	}
	if r.NormalRate.IsNegative() || r.OvertimeRate.IsNegative() || r.HolidayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "rates", Message: "rates must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateWorkerRequest) ToEntity() Worker {
	status := Status(r.Status)
	if status == "" {
		status = StatusActive
	}
	employment := r.EmploymentType
	if employment == "" {
		employment = string(EmploymentDaily)
	}
	return Worker{
		Name:           r.Name,
		SkillTier:      r.SkillTier,
		EmploymentType: employment,
		Rates: RateProfile{
			Normal:   r.NormalRate,
			Overtime: r.OvertimeRate,
			Holiday:  r.HolidayRate,
		},
		Status: status,
	}
}

type UpdateWorkerRequest struct {
	Name           *string          `json:"name,omitempty"`
	SkillTier      *string          `json:"skill_tier,omitempty"`
	EmploymentType *string          `json:"employment_type,omitempty"`
	NormalRate     *decimal.Decimal `json:"normal_rate,omitempty"`
	OvertimeRate   *decimal.Decimal `json:"overtime_rate,omitempty"`
	HolidayRate    *decimal.Decimal `json:"holiday_rate,omitempty"`
	Status         *string          `json:"status,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "must be one of daily, contract"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of active, inactive, on_leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Apply copies the non-nil fields onto w. Rate changes affect future
// calculations only; stored attendance wages are never rewritten.
func (r *UpdateWorkerRequest) Apply(w Worker) Worker {
	if r.Name != nil {
		w.Name = *r.Name
	}
	if r.SkillTier != nil {
		w.SkillTier = *r.SkillTier
	}
	if r.EmploymentType != nil {
		w.EmploymentType = *r.EmploymentType
	}
	if r.NormalRate != nil {
		w.Rates.Normal = *r.NormalRate
	}
	if r.OvertimeRate != nil {
		w.Rates.Overtime = *r.OvertimeRate
	}
	if r.HolidayRate != nil {
		w.Rates.Holiday = *r.HolidayRate
	}
	if r.Status != nil {
		w.Status = Status(*r.Status)
	}
	return w
}
