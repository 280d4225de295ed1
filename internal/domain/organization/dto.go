package organization

import "github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"

type OrganizationResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Username           string  `json:"username"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	TaxNumber          *string `json:"tax_number,omitempty"`
}

type UpdateOrganizationRequest struct {
	Name               *string `json:"name,omitempty"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	TaxNumber          *string `json:"tax_number,omitempty"`
}

func (r *UpdateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(org Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:                 org.ID,
		Name:               org.Name,
		Username:           org.Username,
		RegistrationNumber: org.RegistrationNumber,
		TaxNumber:          org.TaxNumber,
	}
}
