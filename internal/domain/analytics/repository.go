package analytics

import "context"

type AnalyticsRepository interface {
	GetTimesheetSummary(ctx context.Context, organizationID string) ([]TimesheetStatusSummary, error)
	GetInvoiceSummary(ctx context.Context, organizationID string) ([]InvoiceStatusSummary, error)
	GetWithholdingSummary(ctx context.Context, organizationID string, taxYear *int) ([]WithholdingTypeSummary, error)
}
