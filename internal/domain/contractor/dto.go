package contractor

import "github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"

type CreateContractorRequest struct {
	SupplierID   string  `json:"supplier_id"`
	FullName     string  `json:"full_name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	RoleTitle    *string `json:"role_title,omitempty"`
	TaxReference *string `json:"tax_reference,omitempty"`
}

func (r *CreateContractorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SupplierID) {
		errs = append(errs, validator.ValidationError{Field: "supplier_id", Message: "supplier_id is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name must not exceed 255 characters"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateContractorRequest struct {
	ID           string  `json:"-"`
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	RoleTitle    *string `json:"role_title,omitempty"`
	TaxReference *string `json:"tax_reference,omitempty"`
}

func (r *UpdateContractorRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ContractorResponse struct {
	ID           string  `json:"id"`
	SupplierID   string  `json:"supplier_id"`
	SupplierName *string `json:"supplier_name,omitempty"`
	FullName     string  `json:"full_name"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	RoleTitle    *string `json:"role_title,omitempty"`
	TaxReference *string `json:"tax_reference,omitempty"`
}

func ToResponse(c Contractor) ContractorResponse {
	return ContractorResponse{
		ID:           c.ID,
		SupplierID:   c.SupplierID,
		SupplierName: c.SupplierName,
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		RoleTitle:    c.RoleTitle,
		TaxReference: c.TaxReference,
	}
}
