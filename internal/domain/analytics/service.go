package analytics

import "context"

type AnalyticsService interface {
	GetOrganizationSummary(ctx context.Context, organizationID string, taxYear *int) (OrganizationSummaryResponse, error)
}
