package contract

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"
)

type CreateContractRequest struct {
	SupplierID     string  `json:"supplier_id"`
	ContractNumber string  `json:"contract_number"`
	Title          *string `json:"title,omitempty"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
}

func (r *CreateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SupplierID) {
		errs = append(errs, validator.ValidationError{Field: "supplier_id", Message: "supplier_id is required"})
	}
	if validator.IsEmpty(r.ContractNumber) {
		errs = append(errs, validator.ValidationError{Field: "contract_number", Message: "contract_number is required"})
	} else if !validator.IsValidContractNumber(r.ContractNumber) {
		errs = append(errs, validator.ValidationError{Field: "contract_number", Message: "contract_number may only contain letters, numbers, hyphens, and slashes (3-50 characters)"})
	}

	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be a valid date (YYYY-MM-DD)"})
		} else if !end.After(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be after start_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateContractRequest struct {
	ID        string  `json:"-"`
	Title     *string `json:"title,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (r *UpdateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TerminateContractRequest struct {
	Reason string `json:"reason"`
}

type CreateEngagementRequest struct {
	ContractID   string          `json:"-"`
	ContractorID string          `json:"contractor_id"`
	RoleTitle    string          `json:"role_title"`
	Rate         decimal.Decimal `json:"rate"`
	RateType     string          `json:"rate_type"`
	Currency     string          `json:"currency"`
	StartDate    string          `json:"start_date"`
	EndDate      *string         `json:"end_date,omitempty"`
}

func (r *CreateEngagementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ContractorID) {
		errs = append(errs, validator.ValidationError{Field: "contractor_id", Message: "contractor_id is required"})
	}
	if validator.IsEmpty(r.RoleTitle) {
		errs = append(errs, validator.ValidationError{Field: "role_title", Message: "role_title is required"})
	}
	if !validator.IsPositiveDecimal(r.Rate) {
		errs = append(errs, validator.ValidationError{Field: "rate", Message: "rate must be greater than zero"})
	}
	if !IsValidRateType(r.RateType) {
		errs = append(errs, validator.ValidationError{Field: "rate_type", Message: "rate_type must be one of 'hourly', 'daily', 'fixed'"})
	}
	if !validator.IsValidCurrency(r.Currency) {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "currency must be a 3-letter ISO code"})
	}

	start, ok := validator.IsValidDate(r.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be a valid date (YYYY-MM-DD)"})
	}
	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be a valid date (YYYY-MM-DD)"})
		} else if !end.After(start) {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be after start_date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ContractResponse struct {
	ID                string     `json:"id"`
	SupplierID        string     `json:"supplier_id"`
	SupplierName      *string    `json:"supplier_name,omitempty"`
	ContractNumber    string     `json:"contract_number"`
	Title             *string    `json:"title,omitempty"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	Status            string     `json:"status"`
	SignedAt          *time.Time `json:"signed_at,omitempty"`
	SignedBy          *string    `json:"signed_by,omitempty"`
	TerminatedAt      *time.Time `json:"terminated_at,omitempty"`
	TerminationReason *string    `json:"termination_reason,omitempty"`
	EngagementCount   *int64     `json:"engagement_count,omitempty"`
}

func ToContractResponse(c SupplierContract) ContractResponse {
	return ContractResponse{
		ID:                c.ID,
		SupplierID:        c.SupplierID,
		SupplierName:      c.SupplierName,
		ContractNumber:    c.ContractNumber,
		Title:             c.Title,
		StartDate:         c.StartDate,
		EndDate:           c.EndDate,
		Status:            string(c.Status),
		SignedAt:          c.SignedAt,
		SignedBy:          c.SignedBy,
		TerminatedAt:      c.TerminatedAt,
		TerminationReason: c.TerminationReason,
		EngagementCount:   c.EngagementCount,
	}
}

type EngagementResponse struct {
	ID             string          `json:"id"`
	ContractID     string          `json:"contract_id"`
	ContractorID   string          `json:"contractor_id"`
	ContractorName *string         `json:"contractor_name,omitempty"`
	RoleTitle      string          `json:"role_title"`
	Rate           decimal.Decimal `json:"rate"`
	RateType       string          `json:"rate_type"`
	Currency       string          `json:"currency"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        *time.Time      `json:"end_date,omitempty"`
	IsActive       bool            `json:"is_active"`
}

func ToEngagementResponse(e Engagement) EngagementResponse {
	return EngagementResponse{
		ID:             e.ID,
		ContractID:     e.ContractID,
		ContractorID:   e.ContractorID,
		ContractorName: e.ContractorName,
		RoleTitle:      e.RoleTitle,
		Rate:           e.Rate,
		RateType:       string(e.RateType),
		Currency:       e.Currency,
		StartDate:      e.StartDate,
		EndDate:        e.EndDate,
		IsActive:       e.IsActive,
	}
}
