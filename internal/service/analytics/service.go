package analytics

import (
	"context"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/analytics"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type AnalyticsServiceImpl struct {
	db            *database.DB
	analyticsRepo analytics.AnalyticsRepository
}

func NewAnalyticsService(db *database.DB, analyticsRepo analytics.AnalyticsRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{db: db, analyticsRepo: analyticsRepo}
}

func (s *AnalyticsServiceImpl) GetOrganizationSummary(ctx context.Context, organizationID string, taxYear *int) (analytics.OrganizationSummaryResponse, error) {
	timesheets, err := s.analyticsRepo.GetTimesheetSummary(ctx, organizationID)
	if err != nil {
		return analytics.OrganizationSummaryResponse{}, err
	}

	invoices, err := s.analyticsRepo.GetInvoiceSummary(ctx, organizationID)
	if err != nil {
		return analytics.OrganizationSummaryResponse{}, err
	}

	withholdings, err := s.analyticsRepo.GetWithholdingSummary(ctx, organizationID, taxYear)
	if err != nil {
		return analytics.OrganizationSummaryResponse{}, err
	}

	return analytics.OrganizationSummaryResponse{
		Timesheets:  timesheets,
		Invoices:    invoices,
		Withholding: withholdings,
	}, nil
}
