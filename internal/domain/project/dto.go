package project

import (
	"github.com/shopspring/decimal"
	"github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	TargetBudget decimal.Decimal `json:"target_budget"`
	Status       string          `json:"status"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of active, completed, pending"})
	}
	if r.TargetBudget.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "target_budget", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateProjectRequest) ToEntity() Project {
	status := Status(r.Status)
	if status == "" {
		status = StatusPending
	}
	return Project{
		Name:         r.Name,
		Location:     r.Location,
		TargetBudget: r.TargetBudget,
		Status:       status,
	}
}

type UpdateProjectRequest struct {
	Name         *string          `json:"name,omitempty"`
	Location     *string          `json:"location,omitempty"`
	TargetBudget *decimal.Decimal `json:"target_budget,omitempty"`
	Status       *string          `json:"status,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of active, completed, pending"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpdateProjectRequest) Apply(p Project) Project {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.TargetBudget != nil {
		p.TargetBudget = *r.TargetBudget
	}
	if r.Status != nil {
		p.Status = Status(*r.Status)
	}
	return p
}
