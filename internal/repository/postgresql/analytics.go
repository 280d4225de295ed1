package postgresql

import (
	"context"
	"fmt"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/analytics"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepositoryImpl{db: db}
}

func (r *analyticsRepositoryImpl) GetTimesheetSummary(ctx context.Context, organizationID string) ([]analytics.TimesheetStatusSummary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT status, COUNT(*), COALESCE(SUM(total_hours), 0)
		FROM timesheets
		WHERE organization_id = $1
		GROUP BY status
		ORDER BY status
	`, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timesheet summary: %w", err)
	}
	defer rows.Close()

	var summaries []analytics.TimesheetStatusSummary
	for rows.Next() {
		var s analytics.TimesheetStatusSummary
		if err := rows.Scan(&s.Status, &s.Count, &s.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}

func (r *analyticsRepositoryImpl) GetInvoiceSummary(ctx context.Context, organizationID string) ([]analytics.InvoiceStatusSummary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT status, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM invoices
		WHERE organization_id = $1
		GROUP BY status
		ORDER BY status
	`, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice summary: %w", err)
	}
	defer rows.Close()

	var summaries []analytics.InvoiceStatusSummary
	for rows.Next() {
		var s analytics.InvoiceStatusSummary
		if err := rows.Scan(&s.Status, &s.Count, &s.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan invoice summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}

func (r *analyticsRepositoryImpl) GetWithholdingSummary(ctx context.Context, organizationID string, taxYear *int) ([]analytics.WithholdingTypeSummary, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT withholding_type, tax_year, COUNT(*), COALESCE(SUM(gross_amount), 0), COALESCE(SUM(withholding_amount), 0)
		FROM withholding_instructions
		WHERE organization_id = $1 AND ($2::int IS NULL OR tax_year = $2)
		GROUP BY withholding_type, tax_year
		ORDER BY tax_year DESC, withholding_type
	`, organizationID, taxYear)
	if err != nil {
		return nil, fmt.Errorf("failed to get withholding summary: %w", err)
	}
	defer rows.Close()

	var summaries []analytics.WithholdingTypeSummary
	for rows.Next() {
		var s analytics.WithholdingTypeSummary
		if err := rows.Scan(&s.WithholdingType, &s.TaxYear, &s.Count, &s.TotalGross, &s.TotalWithheld); err != nil {
			return nil, fmt.Errorf("failed to scan withholding summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}
