package invoice

import "errors"

var (
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrInvoiceNotDraft         = errors.New("invoice is not in draft status")
	ErrInvoiceNotSubmitted     = errors.New("invoice is not in submitted status")
	ErrInvoiceNotApproved      = errors.New("invoice is not in approved status")
	ErrInvoiceNoLineItems      = errors.New("invoice has no line items")
	ErrInvoiceNotDeletable     = errors.New("only draft or rejected invoices can be deleted")
	ErrInvoiceAlreadyProcessed = errors.New("invoice has already been processed")
	ErrInvoicePaidImmutable    = errors.New("paid invoices cannot be voided or cancelled")
	ErrVoidReasonRequired      = errors.New("void reason is required")

	ErrNoTimesheets           = errors.New("at least one timesheet is required")
	ErrTimesheetsNotApproved  = errors.New("all timesheets must be approved before invoicing")
	ErrTimesheetsMixedParties = errors.New("timesheets span more than one supplier")
	ErrTimesheetsInvoiced     = errors.New("one or more timesheets are already linked to an invoice")
	ErrNoActiveEngagement     = errors.New("contractor has no active engagement")
	ErrAmbiguousEngagement    = errors.New("contractor has more than one active engagement")
	ErrMixedCurrencies        = errors.New("engagements use more than one currency")
)
