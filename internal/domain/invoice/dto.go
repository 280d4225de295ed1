package invoice

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"
)

type BuildInvoiceRequest struct {
	TimesheetIDs []string `json:"timesheet_ids"`
}

func (r *BuildInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.TimesheetIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "timesheet_ids", Message: "at least one timesheet_id is required"})
	}
	for i, id := range r.TimesheetIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "timesheet_ids[" + validator.Itoa(i) + "]",
				Message: "timesheet_id must not be empty",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type UpdateInvoiceRequest struct {
	ID        string            `json:"-"`
	LineItems []LineItemRequest `json:"line_items"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.LineItems) == 0 {
		errs = append(errs, validator.ValidationError{Field: "line_items", Message: "at least one line item is required"})
	}
	for i, li := range r.LineItems {
		if validator.IsEmpty(li.Description) {
			errs = append(errs, validator.ValidationError{
				Field:   "line_items[" + validator.Itoa(i) + "].description",
				Message: "description is required",
			})
		}
		if !li.Quantity.IsPositive() {
			errs = append(errs, validator.ValidationError{
				Field:   "line_items[" + validator.Itoa(i) + "].quantity",
				Message: "quantity must be greater than zero",
			})
		}
		if li.UnitPrice.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "line_items[" + validator.Itoa(i) + "].unit_price",
				Message: "unit_price must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectInvoiceRequest struct {
	Reason string `json:"reason"`
}

type MarkPaidRequest struct {
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Reference  string          `json:"reference"`
	Method     string          `json:"method"`
	PaidAt     *string         `json:"paid_at,omitempty"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.PaidAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "paid_amount", Message: "paid_amount must be greater than zero"})
	}
	if validator.IsEmpty(r.Reference) {
		errs = append(errs, validator.ValidationError{Field: "reference", Message: "reference is required"})
	}
	if validator.IsEmpty(r.Method) {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "method is required"})
	}
	if r.PaidAt != nil {
		if _, ok := validator.IsValidDateTime(*r.PaidAt); !ok {
			errs = append(errs, validator.ValidationError{Field: "paid_at", Message: "paid_at must be a valid ISO8601 timestamp"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type VoidInvoiceRequest struct {
	Reason string `json:"reason"`
}

type LineItemResponse struct {
	ID          string          `json:"id"`
	TimesheetID *string         `json:"timesheet_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoiceResponse struct {
	ID               string             `json:"id"`
	SupplierID       string             `json:"supplier_id"`
	SupplierName     *string            `json:"supplier_name,omitempty"`
	InvoiceNumber    string             `json:"invoice_number"`
	Currency         string             `json:"currency"`
	PeriodStart      time.Time          `json:"period_start"`
	PeriodEnd        time.Time          `json:"period_end"`
	LineItems        []LineItemResponse `json:"line_items"`
	Subtotal         decimal.Decimal    `json:"subtotal"`
	TaxAmount        decimal.Decimal    `json:"tax_amount"`
	TotalAmount      decimal.Decimal    `json:"total_amount"`
	Status           string             `json:"status"`
	TimesheetIDs     []string           `json:"timesheet_ids,omitempty"`
	SubmittedAt      *time.Time         `json:"submitted_at,omitempty"`
	ApprovedAt       *time.Time         `json:"approved_at,omitempty"`
	ApprovedBy       *string            `json:"approved_by,omitempty"`
	RejectionReason  *string            `json:"rejection_reason,omitempty"`
	PaidAt           *time.Time         `json:"paid_at,omitempty"`
	PaidAmount       *decimal.Decimal   `json:"paid_amount,omitempty"`
	PaymentReference *string            `json:"payment_reference,omitempty"`
	PaymentMethod    *string            `json:"payment_method,omitempty"`
	VoidedAt         *time.Time         `json:"voided_at,omitempty"`
	VoidReason       *string            `json:"void_reason,omitempty"`
}

func ToResponse(inv Invoice) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
		items = append(items, LineItemResponse{
			ID:          li.ID,
			TimesheetID: li.TimesheetID,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Amount:      li.Amount,
		})
	}

	return InvoiceResponse{
		ID:               inv.ID,
		SupplierID:       inv.SupplierID,
		SupplierName:     inv.SupplierName,
		InvoiceNumber:    inv.InvoiceNumber,
		Currency:         inv.Currency,
		PeriodStart:      inv.PeriodStart,
		PeriodEnd:        inv.PeriodEnd,
		LineItems:        items,
		Subtotal:         inv.Subtotal,
		TaxAmount:        inv.TaxAmount,
		TotalAmount:      inv.TotalAmount,
		Status:           string(inv.Status),
		TimesheetIDs:     inv.TimesheetIDs,
		SubmittedAt:      inv.SubmittedAt,
		ApprovedAt:       inv.ApprovedAt,
		ApprovedBy:       inv.ApprovedBy,
		RejectionReason:  inv.RejectionReason,
		PaidAt:           inv.PaidAt,
		PaidAmount:       inv.PaidAmount,
		PaymentReference: inv.PaymentReference,
		PaymentMethod:    inv.PaymentMethod,
		VoidedAt:         inv.VoidedAt,
		VoidReason:       inv.VoidReason,
	}
}
