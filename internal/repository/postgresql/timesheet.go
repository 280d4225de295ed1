package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/timesheet"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type timesheetRepositoryImpl struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepositoryImpl{db: db}
}

const timesheetColumns = `
	t.id, t.organization_id, t.contractor_id, t.project_id, t.period_start,
	t.period_end, t.total_hours, t.status, t.submitted_at, t.approved_at,
	t.approved_by, t.rejection_reason, t.invoice_id, t.created_at, t.updated_at
`

func scanTimesheet(row pgx.Row) (timesheet.Timesheet, error) {
	var ts timesheet.Timesheet
	err := row.Scan(
		&ts.ID,
		&ts.OrganizationID,
		&ts.ContractorID,
		&ts.ProjectID,
		&ts.PeriodStart,
		&ts.PeriodEnd,
		&ts.TotalHours,
		&ts.Status,
		&ts.SubmittedAt,
		&ts.ApprovedAt,
		&ts.ApprovedBy,
		&ts.RejectionReason,
		&ts.InvoiceID,
		&ts.CreatedAt,
		&ts.UpdatedAt,
	)
	return ts, err
}

func (r *timesheetRepositoryImpl) Create(ctx context.Context, ts timesheet.Timesheet) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timesheets (id, organization_id, contractor_id, project_id, period_start, period_end, total_hours, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, 'draft', NOW(), NOW())
		RETURNING ` + strings.ReplaceAll(timesheetColumns, "t.", "")

	result, err := scanTimesheet(q.QueryRow(ctx, query,
		ts.OrganizationID,
		ts.ContractorID,
		ts.ProjectID,
		ts.PeriodStart,
		ts.PeriodEnd,
		ts.TotalHours,
	))
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to create timesheet: %w", err)
	}

	if err := r.insertEntries(ctx, q, result.ID, ts.Entries); err != nil {
		return timesheet.Timesheet{}, err
	}

	entries, err := r.getEntries(ctx, q, result.ID)
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	result.Entries = entries

	return result, nil
}

func (r *timesheetRepositoryImpl) insertEntries(ctx context.Context, q database.Querier, timesheetID string, entries []timesheet.Entry) error {
	for _, e := range entries {
		_, err := q.Exec(ctx, `
			INSERT INTO timesheet_entries (id, timesheet_id, work_date, hours, description)
			VALUES (uuidv7(), $1, $2, $3, $4)
		`, timesheetID, e.WorkDate, e.Hours, e.Description)
		if err != nil {
			return fmt.Errorf("failed to insert timesheet entry: %w", err)
		}
	}
	return nil
}

func (r *timesheetRepositoryImpl) getEntries(ctx context.Context, q database.Querier, timesheetID string) ([]timesheet.Entry, error) {
	rows, err := q.Query(ctx, `
		SELECT id, timesheet_id, work_date, hours, description
		FROM timesheet_entries
		WHERE timesheet_id = $1
		ORDER BY work_date
	`, timesheetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []timesheet.Entry
	for rows.Next() {
		var e timesheet.Entry
		if err := rows.Scan(&e.ID, &e.TimesheetID, &e.WorkDate, &e.Hours, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (r *timesheetRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `, c.full_name, p.name
		FROM timesheets t
		INNER JOIN contractors c ON t.contractor_id = c.id
		LEFT JOIN projects p ON t.project_id = p.id
		WHERE t.id = $1 AND t.organization_id = $2
	`

	var ts timesheet.Timesheet
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&ts.ID,
		&ts.OrganizationID,
		&ts.ContractorID,
		&ts.ProjectID,
		&ts.PeriodStart,
		&ts.PeriodEnd,
		&ts.TotalHours,
		&ts.Status,
		&ts.SubmittedAt,
		&ts.ApprovedAt,
		&ts.ApprovedBy,
		&ts.RejectionReason,
		&ts.InvoiceID,
		&ts.CreatedAt,
		&ts.UpdatedAt,
		&ts.ContractorName,
		&ts.ProjectName,
	)
	if err == pgx.ErrNoRows {
		return timesheet.Timesheet{}, timesheet.ErrTimesheetNotFound
	}
	if err != nil {
		return timesheet.Timesheet{}, fmt.Errorf("failed to get timesheet: %w", err)
	}

	entries, err := r.getEntries(ctx, q, ts.ID)
	if err != nil {
		return timesheet.Timesheet{}, err
	}
	ts.Entries = entries

	return ts, nil
}

func (r *timesheetRepositoryImpl) GetByIDs(ctx context.Context, ids []string, organizationID string) ([]timesheet.Timesheet, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timesheetColumns + `
		FROM timesheets t
		WHERE t.id = ANY($1) AND t.organization_id = $2
		ORDER BY t.period_start
	`

	rows, err := q.Query(ctx, query, ids, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get timesheets: %w", err)
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		ts, err := scanTimesheet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		timesheets = append(timesheets, ts)
	}

	return timesheets, nil
}

func (r *timesheetRepositoryImpl) List(ctx context.Context, organizationID string, filter timesheet.ListFilter) ([]timesheet.Timesheet, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"t.organization_id = $1"}
	args := []interface{}{organizationID}
	argPos := 2

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.ContractorID != nil {
		conditions = append(conditions, fmt.Sprintf("t.contractor_id = $%d", argPos))
		args = append(args, *filter.ContractorID)
		argPos++
	}
	if filter.ProjectID != nil {
		conditions = append(conditions, fmt.Sprintf("t.project_id = $%d", argPos))
		args = append(args, *filter.ProjectID)
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT %s, c.full_name, p.name
		FROM timesheets t
		INNER JOIN contractors c ON t.contractor_id = c.id
		LEFT JOIN projects p ON t.project_id = p.id
		WHERE %s
		ORDER BY t.period_start DESC
	`, timesheetColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets: %w", err)
	}
	defer rows.Close()

	var timesheets []timesheet.Timesheet
	for rows.Next() {
		var ts timesheet.Timesheet
		err := rows.Scan(
			&ts.ID,
			&ts.OrganizationID,
			&ts.ContractorID,
			&ts.ProjectID,
			&ts.PeriodStart,
			&ts.PeriodEnd,
			&ts.TotalHours,
			&ts.Status,
			&ts.SubmittedAt,
			&ts.ApprovedAt,
			&ts.ApprovedBy,
			&ts.RejectionReason,
			&ts.InvoiceID,
			&ts.CreatedAt,
			&ts.UpdatedAt,
			&ts.ContractorName,
			&ts.ProjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timesheet: %w", err)
		}
		timesheets = append(timesheets, ts)
	}

	return timesheets, nil
}

func (r *timesheetRepositoryImpl) ReplaceEntries(ctx context.Context, id, organizationID string, periodStart, periodEnd time.Time, entries []timesheet.Entry, totalHours decimal.Decimal) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE timesheets
		SET period_start = $3, period_end = $4, total_hours = $5, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'draft'
	`, id, organizationID, periodStart, periodEnd, totalHours)
	if err != nil {
		return false, fmt.Errorf("failed to update timesheet: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return false, nil
	}

	_, err = q.Exec(ctx, `DELETE FROM timesheet_entries WHERE timesheet_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete timesheet entries: %w", err)
	}

	if err := r.insertEntries(ctx, q, id, entries); err != nil {
		return false, err
	}

	return true, nil
}

func (r *timesheetRepositoryImpl) Submit(ctx context.Context, id, organizationID string, submittedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE timesheets
		SET status = 'submitted', submitted_at = $3, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'draft'
	`, id, organizationID, submittedAt)
	if err != nil {
		return false, fmt.Errorf("failed to submit timesheet: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *timesheetRepositoryImpl) Approve(ctx context.Context, id, organizationID, approvedBy string, approvedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE timesheets
		SET status = 'approved', approved_at = $3, approved_by = $4, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'submitted'
	`, id, organizationID, approvedAt, approvedBy)
	if err != nil {
		return false, fmt.Errorf("failed to approve timesheet: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *timesheetRepositoryImpl) Reject(ctx context.Context, id, organizationID, reason string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE timesheets
		SET status = 'rejected', rejection_reason = $3, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'submitted'
	`, id, organizationID, reason)
	if err != nil {
		return false, fmt.Errorf("failed to reject timesheet: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *timesheetRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM timesheets
		WHERE id = $1 AND organization_id = $2 AND status IN ('draft', 'rejected')
	`, id, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to delete timesheet: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *timesheetRepositoryImpl) FindLinkedToOpenInvoice(ctx context.Context, ids []string, organizationID string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT t.id
		FROM timesheets t
		INNER JOIN invoices i ON t.invoice_id = i.id
		WHERE t.id = ANY($1) AND t.organization_id = $2 AND i.status != 'cancelled'
	`, ids, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to check timesheet invoice links: %w", err)
	}
	defer rows.Close()

	var linked []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet id: %w", err)
		}
		linked = append(linked, id)
	}

	return linked, nil
}

func (r *timesheetRepositoryImpl) LinkInvoice(ctx context.Context, ids []string, organizationID, invoiceID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE timesheets
		SET invoice_id = $3, updated_at = NOW()
		WHERE id = ANY($1) AND organization_id = $2
	`, ids, organizationID, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to link timesheets to invoice: %w", err)
	}
	if commandTag.RowsAffected() != int64(len(ids)) {
		return timesheet.ErrTimesheetNotFound
	}

	return nil
}

func (r *timesheetRepositoryImpl) UnlinkInvoice(ctx context.Context, invoiceID string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE timesheets
		SET invoice_id = NULL, updated_at = NOW()
		WHERE invoice_id = $1 AND organization_id = $2
	`, invoiceID, organizationID)
	if err != nil {
		return fmt.Errorf("failed to unlink timesheets from invoice: %w", err)
	}

	return nil
}
