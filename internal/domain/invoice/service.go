package invoice

import "context"

type InvoiceService interface {
	// BuildFromTimesheets turns a batch of approved timesheets into a
	// draft invoice, pricing each timesheet from the contractor's single
	// active engagement.
	BuildFromTimesheets(ctx context.Context, organizationID string, req BuildInvoiceRequest) (InvoiceResponse, error)

	GetByID(ctx context.Context, id string, organizationID string) (InvoiceResponse, error)
	List(ctx context.Context, organizationID string, filter ListFilter) ([]InvoiceResponse, error)
	Update(ctx context.Context, organizationID string, req UpdateInvoiceRequest) (InvoiceResponse, error)

	Submit(ctx context.Context, id string, organizationID string) (InvoiceResponse, error)
	Approve(ctx context.Context, id string, organizationID string, approverID string) (InvoiceResponse, error)
	Reject(ctx context.Context, id string, organizationID string, req RejectInvoiceRequest) (InvoiceResponse, error)
	MarkPaid(ctx context.Context, id string, organizationID string, req MarkPaidRequest) (InvoiceResponse, error)
	Cancel(ctx context.Context, id string, organizationID string) (InvoiceResponse, error)
	Void(ctx context.Context, id string, organizationID string, req VoidInvoiceRequest) (InvoiceResponse, error)
	Delete(ctx context.Context, id string, organizationID string) error
}
