package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSubmitted InvoiceStatus = "submitted"
	InvoiceStatusApproved  InvoiceStatus = "approved"
	InvoiceStatusRejected  InvoiceStatus = "rejected"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	InvoiceStatusVoid      InvoiceStatus = "void"
)

type LineItem struct {
	ID          string
	InvoiceID   string
	TimesheetID *string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Amount      decimal.Decimal
}

type Invoice struct {
	ID               string
	OrganizationID   string
	SupplierID       string
	InvoiceNumber    string
	Currency         string
	PeriodStart      time.Time
	PeriodEnd        time.Time
	LineItems        []LineItem
	Subtotal         decimal.Decimal
	TaxAmount        decimal.Decimal
	TotalAmount      decimal.Decimal
	Status           InvoiceStatus
	TimesheetIDs     []string
	SubmittedAt      *time.Time
	ApprovedAt       *time.Time
	ApprovedBy       *string
	RejectionReason  *string
	PaidAt           *time.Time
	PaidAmount       *decimal.Decimal
	PaymentReference *string
	PaymentMethod    *string
	VoidedAt         *time.Time
	VoidReason       *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	SupplierName *string
}

// Totals computes subtotal, tax, and total from line items. Amounts on an
// invoice are always derived this way, never hand-edited.
func Totals(items []LineItem, taxRate decimal.Decimal) (subtotal, taxAmount, totalAmount decimal.Decimal) {
	subtotal = decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.Amount)
	}
	taxAmount = subtotal.Mul(taxRate).Round(2)
	totalAmount = subtotal.Add(taxAmount)
	return subtotal, taxAmount, totalAmount
}
