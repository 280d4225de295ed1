package supplier

import "github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"

type CreateSupplierRequest struct {
	Name               string  `json:"name"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	TaxNumber          *string `json:"tax_number,omitempty"`
	Email              *string `json:"email,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	AddressLine        *string `json:"address_line,omitempty"`
}

func (r *CreateSupplierRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not exceed 255 characters"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSupplierRequest struct {
	ID                 string  `json:"-"`
	Name               *string `json:"name,omitempty"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	TaxNumber          *string `json:"tax_number,omitempty"`
	Email              *string `json:"email,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	AddressLine        *string `json:"address_line,omitempty"`
}

func (r *UpdateSupplierRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SupplierResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	TaxNumber          *string `json:"tax_number,omitempty"`
	Email              *string `json:"email,omitempty"`
	Phone              *string `json:"phone,omitempty"`
	AddressLine        *string `json:"address_line,omitempty"`
	ContractorCount    *int64  `json:"contractor_count,omitempty"`
}

func ToResponse(s Supplier) SupplierResponse {
	return SupplierResponse{
		ID:                 s.ID,
		Name:               s.Name,
		RegistrationNumber: s.RegistrationNumber,
		TaxNumber:          s.TaxNumber,
		Email:              s.Email,
		Phone:              s.Phone,
		AddressLine:        s.AddressLine,
		ContractorCount:    s.ContractorCount,
	}
}
