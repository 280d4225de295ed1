package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ListFilter struct {
	Status     *InvoiceStatus
	SupplierID *string
}

type InvoiceRepository interface {
	// Create persists the invoice with its line items in one statement
	// batch; callers wrap it in a transaction together with timesheet
	// linking.
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	GetByID(ctx context.Context, id string, organizationID string) (Invoice, error)
	List(ctx context.Context, organizationID string, filter ListFilter) ([]Invoice, error)

	// ReplaceLineItems swaps the full line-item set of a draft invoice
	// and writes the recomputed amounts. Returns false when the invoice
	// was not in draft.
	ReplaceLineItems(ctx context.Context, id, organizationID string, items []LineItem, subtotal, taxAmount, totalAmount decimal.Decimal) (bool, error)

	// Compare-and-swap status transitions; false means the precondition
	// status did not hold.
	Submit(ctx context.Context, id, organizationID string, submittedAt time.Time) (bool, error)
	Approve(ctx context.Context, id, organizationID, approvedBy string, approvedAt time.Time) (bool, error)
	Reject(ctx context.Context, id, organizationID, reason string) (bool, error)
	MarkPaid(ctx context.Context, id, organizationID string, paidAmount decimal.Decimal, reference, method string, paidAt time.Time) (bool, error)
	Cancel(ctx context.Context, id, organizationID string) (bool, error)
	Void(ctx context.Context, id, organizationID, reason string, voidedAt time.Time) (bool, error)

	// Delete removes a draft or rejected invoice together with its line
	// items. Returns false when status forbids it.
	Delete(ctx context.Context, id string, organizationID string) (bool, error)

	// GetStatus reads the current status without the full row, used by
	// guards that must distinguish "paid" from other non-matching states.
	GetStatus(ctx context.Context, id string, organizationID string) (InvoiceStatus, error)
}
