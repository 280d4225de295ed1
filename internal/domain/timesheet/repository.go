package timesheet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type ListFilter struct {
	Status       *TimesheetStatus
	ContractorID *string
	ProjectID    *string
}

type TimesheetRepository interface {
	Create(ctx context.Context, ts Timesheet) (Timesheet, error)
	GetByID(ctx context.Context, id string, organizationID string) (Timesheet, error)
	GetByIDs(ctx context.Context, ids []string, organizationID string) ([]Timesheet, error)
	List(ctx context.Context, organizationID string, filter ListFilter) ([]Timesheet, error)

	// ReplaceEntries swaps the full entry set of a draft timesheet and
	// updates the period and total hours. Returns false if the timesheet
	// was not in draft.
	ReplaceEntries(ctx context.Context, id, organizationID string, periodStart, periodEnd time.Time, entries []Entry, totalHours decimal.Decimal) (bool, error)

	// Status transitions are single compare-and-swap statements; each
	// returns false when the current status did not match the required
	// precondition, so concurrent callers cannot both succeed.
	Submit(ctx context.Context, id, organizationID string, submittedAt time.Time) (bool, error)
	Approve(ctx context.Context, id, organizationID, approvedBy string, approvedAt time.Time) (bool, error)
	Reject(ctx context.Context, id, organizationID, reason string) (bool, error)

	// Delete removes a draft or rejected timesheet. Returns false when
	// status forbids it.
	Delete(ctx context.Context, id string, organizationID string) (bool, error)

	// FindLinkedToOpenInvoice returns the subset of ids already linked to
	// an invoice that is not cancelled. Used as the double-invoicing
	// pre-check before building a new invoice.
	FindLinkedToOpenInvoice(ctx context.Context, ids []string, organizationID string) ([]string, error)

	LinkInvoice(ctx context.Context, ids []string, organizationID, invoiceID string) error
	UnlinkInvoice(ctx context.Context, invoiceID string, organizationID string) error
}
