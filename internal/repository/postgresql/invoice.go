package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/invoice"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type invoiceRepositoryImpl struct {
	db *database.DB
}

func NewInvoiceRepository(db *database.DB) invoice.InvoiceRepository {
	return &invoiceRepositoryImpl{db: db}
}

const invoiceColumns = `
	i.id, i.organization_id, i.supplier_id, i.invoice_number, i.currency,
	i.period_start, i.period_end, i.subtotal, i.tax_amount, i.total_amount,
	i.status, i.submitted_at, i.approved_at, i.approved_by, i.rejection_reason,
	i.paid_at, i.paid_amount, i.payment_reference, i.payment_method,
	i.voided_at, i.void_reason, i.created_at, i.updated_at
`

func scanInvoice(row pgx.Row) (invoice.Invoice, error) {
	var inv invoice.Invoice
	err := row.Scan(
		&inv.ID,
		&inv.OrganizationID,
		&inv.SupplierID,
		&inv.InvoiceNumber,
		&inv.Currency,
		&inv.PeriodStart,
		&inv.PeriodEnd,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.TotalAmount,
		&inv.Status,
		&inv.SubmittedAt,
		&inv.ApprovedAt,
		&inv.ApprovedBy,
		&inv.RejectionReason,
		&inv.PaidAt,
		&inv.PaidAmount,
		&inv.PaymentReference,
		&inv.PaymentMethod,
		&inv.VoidedAt,
		&inv.VoidReason,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)
	return inv, err
}

func (r *invoiceRepositoryImpl) Create(ctx context.Context, inv invoice.Invoice) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invoices (id, organization_id, supplier_id, invoice_number, currency, period_start, period_end, subtotal, tax_amount, total_amount, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, 'draft', NOW(), NOW())
		RETURNING ` + strings.ReplaceAll(invoiceColumns, "i.", "")

	result, err := scanInvoice(q.QueryRow(ctx, query,
		inv.OrganizationID,
		inv.SupplierID,
		inv.InvoiceNumber,
		inv.Currency,
		inv.PeriodStart,
		inv.PeriodEnd,
		inv.Subtotal,
		inv.TaxAmount,
		inv.TotalAmount,
	))
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("failed to create invoice: %w", err)
	}

	if err := r.insertLineItems(ctx, q, result.ID, inv.LineItems); err != nil {
		return invoice.Invoice{}, err
	}

	items, err := r.getLineItems(ctx, q, result.ID)
	if err != nil {
		return invoice.Invoice{}, err
	}
	result.LineItems = items

	return result, nil
}

func (r *invoiceRepositoryImpl) insertLineItems(ctx context.Context, q database.Querier, invoiceID string, items []invoice.LineItem) error {
	for _, li := range items {
		_, err := q.Exec(ctx, `
			INSERT INTO invoice_line_items (id, invoice_id, timesheet_id, description, quantity, unit_price, amount)
			VALUES (uuidv7(), $1, $2, $3, $4, $5, $6)
		`, invoiceID, li.TimesheetID, li.Description, li.Quantity, li.UnitPrice, li.Amount)
		if err != nil {
			return fmt.Errorf("failed to insert invoice line item: %w", err)
		}
	}
	return nil
}

func (r *invoiceRepositoryImpl) getLineItems(ctx context.Context, q database.Querier, invoiceID string) ([]invoice.LineItem, error) {
	rows, err := q.Query(ctx, `
		SELECT id, invoice_id, timesheet_id, description, quantity, unit_price, amount
		FROM invoice_line_items
		WHERE invoice_id = $1
		ORDER BY id
	`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice line items: %w", err)
	}
	defer rows.Close()

	var items []invoice.LineItem
	for rows.Next() {
		var li invoice.LineItem
		if err := rows.Scan(&li.ID, &li.InvoiceID, &li.TimesheetID, &li.Description, &li.Quantity, &li.UnitPrice, &li.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan invoice line item: %w", err)
		}
		items = append(items, li)
	}

	return items, nil
}

func (r *invoiceRepositoryImpl) getTimesheetIDs(ctx context.Context, q database.Querier, invoiceID string) ([]string, error) {
	rows, err := q.Query(ctx, `
		SELECT id FROM timesheets WHERE invoice_id = $1 ORDER BY period_start
	`, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice timesheets: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (r *invoiceRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + invoiceColumns + `, s.name
		FROM invoices i
		INNER JOIN suppliers s ON i.supplier_id = s.id
		WHERE i.id = $1 AND i.organization_id = $2
	`

	var inv invoice.Invoice
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&inv.ID,
		&inv.OrganizationID,
		&inv.SupplierID,
		&inv.InvoiceNumber,
		&inv.Currency,
		&inv.PeriodStart,
		&inv.PeriodEnd,
		&inv.Subtotal,
		&inv.TaxAmount,
		&inv.TotalAmount,
		&inv.Status,
		&inv.SubmittedAt,
		&inv.ApprovedAt,
		&inv.ApprovedBy,
		&inv.RejectionReason,
		&inv.PaidAt,
		&inv.PaidAmount,
		&inv.PaymentReference,
		&inv.PaymentMethod,
		&inv.VoidedAt,
		&inv.VoidReason,
		&inv.CreatedAt,
		&inv.UpdatedAt,
		&inv.SupplierName,
	)
	if err == pgx.ErrNoRows {
		return invoice.Invoice{}, invoice.ErrInvoiceNotFound
	}
	if err != nil {
		return invoice.Invoice{}, fmt.Errorf("failed to get invoice: %w", err)
	}

	items, err := r.getLineItems(ctx, q, inv.ID)
	if err != nil {
		return invoice.Invoice{}, err
	}
	inv.LineItems = items

	timesheetIDs, err := r.getTimesheetIDs(ctx, q, inv.ID)
	if err != nil {
		return invoice.Invoice{}, err
	}
	inv.TimesheetIDs = timesheetIDs

	return inv, nil
}

func (r *invoiceRepositoryImpl) List(ctx context.Context, organizationID string, filter invoice.ListFilter) ([]invoice.Invoice, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"i.organization_id = $1"}
	args := []interface{}{organizationID}
	argPos := 2

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("i.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.SupplierID != nil {
		conditions = append(conditions, fmt.Sprintf("i.supplier_id = $%d", argPos))
		args = append(args, *filter.SupplierID)
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT %s, s.name
		FROM invoices i
		INNER JOIN suppliers s ON i.supplier_id = s.id
		WHERE %s
		ORDER BY i.created_at DESC
	`, invoiceColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []invoice.Invoice
	for rows.Next() {
		var inv invoice.Invoice
		err := rows.Scan(
			&inv.ID,
			&inv.OrganizationID,
			&inv.SupplierID,
			&inv.InvoiceNumber,
			&inv.Currency,
			&inv.PeriodStart,
			&inv.PeriodEnd,
			&inv.Subtotal,
			&inv.TaxAmount,
			&inv.TotalAmount,
			&inv.Status,
			&inv.SubmittedAt,
			&inv.ApprovedAt,
			&inv.ApprovedBy,
			&inv.RejectionReason,
			&inv.PaidAt,
			&inv.PaidAmount,
			&inv.PaymentReference,
			&inv.PaymentMethod,
			&inv.VoidedAt,
			&inv.VoidReason,
			&inv.CreatedAt,
			&inv.UpdatedAt,
			&inv.SupplierName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

func (r *invoiceRepositoryImpl) ReplaceLineItems(ctx context.Context, id, organizationID string, items []invoice.LineItem, subtotal, taxAmount, totalAmount decimal.Decimal) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE invoices
		SET subtotal = $3, tax_amount = $4, total_amount = $5, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'draft'
	`, id, organizationID, subtotal, taxAmount, totalAmount)
	if err != nil {
		return false, fmt.Errorf("failed to update invoice: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return false, nil
	}

	_, err = q.Exec(ctx, `DELETE FROM invoice_line_items WHERE invoice_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete invoice line items: %w", err)
	}

	if err := r.insertLineItems(ctx, q, id, items); err != nil {
		return false, err
	}

	return true, nil
}

func (r *invoiceRepositoryImpl) Submit(ctx context.Context, id, organizationID string, submittedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE invoices
		SET status = 'submitted', submitted_at = $3, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'draft'
	`, id, organizationID, submittedAt)
	if err != nil {
		return false, fmt.Errorf("failed to submit invoice: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *invoiceRepositoryImpl) Approve(ctx context.Context, id, organizationID, approvedBy string, approvedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE invoices
		SET status = 'approved', approved_at = $3, approved_by = $4, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'submitted'
	`, id, organizationID, approvedAt, approvedBy)
	if err != nil {
		return false, fmt.Errorf("failed to approve invoice: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *invoiceRepositoryImpl) Reject(ctx context.Context, id, organizationID, reason string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE invoices
		SET status = 'rejected', rejection_reason = $3, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'submitted'
	`, id, organizationID, reason)
	if err != nil {
		return false, fmt.Errorf("failed to reject invoice: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *invoiceRepositoryImpl) MarkPaid(ctx context.Context, id, organizationID string, paidAmount decimal.Decimal, reference, method string, paidAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE invoices
		SET status = 'paid', paid_at = $3, paid_amount = $4, payment_reference = $5, payment_method = $6, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'approved'
	`, id, organizationID, paidAt, paidAmount, reference, method)
	if err != nil {
		return false, fmt.Errorf("failed to mark invoice paid: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *invoiceRepositoryImpl) Cancel(ctx context.Context, id, organizationID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE invoices
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status IN ('draft', 'submitted', 'approved', 'rejected')
	`, id, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to cancel invoice: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *invoiceRepositoryImpl) Void(ctx context.Context, id, organizationID, reason string, voidedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE invoices
		SET status = 'void', voided_at = $3, void_reason = $4, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'approved'
	`, id, organizationID, voidedAt, reason)
	if err != nil {
		return false, fmt.Errorf("failed to void invoice: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *invoiceRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		DELETE FROM invoice_line_items
		WHERE invoice_id = $1
		  AND EXISTS(SELECT 1 FROM invoices WHERE id = $1 AND organization_id = $2 AND status IN ('draft', 'rejected'))
	`, id, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to delete invoice line items: %w", err)
	}

	commandTag, err := q.Exec(ctx, `
		DELETE FROM invoices
		WHERE id = $1 AND organization_id = $2 AND status IN ('draft', 'rejected')
	`, id, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to delete invoice: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *invoiceRepositoryImpl) GetStatus(ctx context.Context, id string, organizationID string) (invoice.InvoiceStatus, error) {
	q := GetQuerier(ctx, r.db)

	var status invoice.InvoiceStatus
	err := q.QueryRow(ctx, `
		SELECT status FROM invoices WHERE id = $1 AND organization_id = $2
	`, id, organizationID).Scan(&status)
	if err == pgx.ErrNoRows {
		return "", invoice.ErrInvoiceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get invoice status: %w", err)
	}

	return status, nil
}
