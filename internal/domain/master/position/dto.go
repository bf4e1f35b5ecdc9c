package position

import "github.com/subkh4n/SIPILPRO-sub001/internal/pkg/validator"

type UpsertPositionRequest struct {
	Name string `json:"name"`
}

func (r *UpsertPositionRequest) Validate() error {
	if validator.IsEmpty(r.Name) {
		return validator.ValidationErrors{{Field: "name", Message: "name is required"}}
	}
	return nil
}
