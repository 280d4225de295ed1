package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/invoice"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/timesheet"
	"github.com/siyanda-labs/contractor-backend-go/internal/repository/postgresql"
	invoicesvc "github.com/siyanda-labs/contractor-backend-go/internal/service/invoice"
)

func newInvoiceService() invoice.InvoiceService {
	return invoicesvc.NewInvoiceService(
		testDB,
		postgresql.NewInvoiceRepository(testDB),
		postgresql.NewTimesheetRepository(testDB),
		postgresql.NewContractorRepository(testDB),
		postgresql.NewEngagementRepository(testDB),
		postgresql.NewSequenceRepository(testDB),
		decimal.NewFromFloat(0.15),
	)
}

func createTestSupplier(t *testing.T, ctx context.Context, organizationID, name string) string {
	var supplierID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO suppliers (id, organization_id, name, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id
	`, organizationID, name).Scan(&supplierID)
	require.NoError(t, err)
	return supplierID
}

func createContractorForSupplier(t *testing.T, ctx context.Context, organizationID, supplierID, fullName, email string) string {
	var contractorID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO contractors (id, organization_id, supplier_id, full_name, email, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id
	`, organizationID, supplierID, fullName, email).Scan(&contractorID)
	require.NoError(t, err)
	return contractorID
}

func createActiveEngagement(t *testing.T, ctx context.Context, organizationID, supplierID, contractorID, contractNumber string, rate decimal.Decimal) {
	var contractID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO supplier_contracts (id, organization_id, supplier_id, contract_number, start_date, status, signed_at, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, '2025-01-01', 'active', NOW(), NOW(), NOW())
		RETURNING id
	`, organizationID, supplierID, contractNumber).Scan(&contractID)
	require.NoError(t, err)

	_, err = testDB.Exec(ctx, `
		INSERT INTO engagements (id, organization_id, contract_id, contractor_id, role_title, rate, rate_type, currency, start_date, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, 'Backend Developer', $4, 'hourly', 'ZAR', '2025-01-01', TRUE, NOW(), NOW())
	`, organizationID, contractID, contractorID, rate)
	require.NoError(t, err)
}

func createApprovedTimesheet(t *testing.T, ctx context.Context, repo timesheet.TimesheetRepository, organizationID, contractorID string) timesheet.Timesheet {
	created := createDraftTimesheet(t, ctx, repo, organizationID, contractorID)

	ok, err := repo.Submit(ctx, created.ID, organizationID, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Approve(ctx, created.ID, organizationID, contractorID, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	return created
}

func TestInvoiceBuildAndPaymentFlow(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	organizationID := createTestOrganization(t, ctx)
	supplierID := createTestSupplier(t, ctx, organizationID, "Ubuntu Consulting")
	contractorID := createContractorForSupplier(t, ctx, organizationID, supplierID, "Thandi Nkosi", "thandi@example.com")
	createActiveEngagement(t, ctx, organizationID, supplierID, contractorID, "SC-2025-001", decimal.NewFromInt(450))

	timesheetRepo := postgresql.NewTimesheetRepository(testDB)
	ts := createApprovedTimesheet(t, ctx, timesheetRepo, organizationID, contractorID)

	svc := newInvoiceService()

	built, err := svc.BuildFromTimesheets(ctx, organizationID, invoice.BuildInvoiceRequest{TimesheetIDs: []string{ts.ID}})
	require.NoError(t, err)
	assert.Equal(t, string(invoice.InvoiceStatusDraft), built.Status)
	assert.Contains(t, built.InvoiceNumber, "INV-")
	require.Len(t, built.LineItems, 1)

	// 8 hours at R450/h plus 15% VAT
	assert.True(t, built.Subtotal.Equal(decimal.NewFromInt(3600)), "subtotal %s", built.Subtotal)
	assert.True(t, built.TaxAmount.Equal(decimal.NewFromInt(540)), "tax %s", built.TaxAmount)
	assert.True(t, built.TotalAmount.Equal(decimal.NewFromInt(4140)), "total %s", built.TotalAmount)

	// The timesheet is now spoken for until that invoice is cancelled
	_, err = svc.BuildFromTimesheets(ctx, organizationID, invoice.BuildInvoiceRequest{TimesheetIDs: []string{ts.ID}})
	require.ErrorIs(t, err, invoice.ErrTimesheetsInvoiced)

	// Replacing line items recomputes every total in the same transaction
	updated, err := svc.Update(ctx, organizationID, invoice.UpdateInvoiceRequest{
		ID: built.ID,
		LineItems: []invoice.LineItemRequest{
			{Description: "March retainer", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(500)},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.LineItems, 1)
	assert.True(t, updated.Subtotal.Equal(decimal.NewFromInt(5000)), "subtotal %s", updated.Subtotal)
	assert.True(t, updated.TaxAmount.Equal(decimal.NewFromInt(750)), "tax %s", updated.TaxAmount)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(5750)), "total %s", updated.TotalAmount)

	_, err = svc.Submit(ctx, built.ID, organizationID)
	require.NoError(t, err)
	_, err = svc.Approve(ctx, built.ID, organizationID, contractorID)
	require.NoError(t, err)

	// A client-supplied payment timestamp must survive, fractional
	// seconds included
	paidAt := "2025-04-30T10:15:30.123456789Z"
	want, err := time.Parse(time.RFC3339Nano, paidAt)
	require.NoError(t, err)

	paid, err := svc.MarkPaid(ctx, built.ID, organizationID, invoice.MarkPaidRequest{
		PaidAmount: decimal.NewFromInt(5750),
		Reference:  "EFT-2025-118",
		Method:     "eft",
		PaidAt:     &paidAt,
	})
	require.NoError(t, err)
	assert.Equal(t, string(invoice.InvoiceStatusPaid), paid.Status)
	require.NotNil(t, paid.PaidAt)
	assert.WithinDuration(t, want, *paid.PaidAt, time.Millisecond)

	// Paid invoices are immutable
	_, err = svc.Void(ctx, built.ID, organizationID, invoice.VoidInvoiceRequest{Reason: "duplicate"})
	require.ErrorIs(t, err, invoice.ErrInvoicePaidImmutable)
}

func TestInvoiceSubmitOnlyFromDraft(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	organizationID := createTestOrganization(t, ctx)
	supplierID := createTestSupplier(t, ctx, organizationID, "Ubuntu Consulting")
	contractorID := createContractorForSupplier(t, ctx, organizationID, supplierID, "Thandi Nkosi", "thandi@example.com")
	createActiveEngagement(t, ctx, organizationID, supplierID, contractorID, "SC-2025-001", decimal.NewFromInt(450))

	timesheetRepo := postgresql.NewTimesheetRepository(testDB)
	ts := createApprovedTimesheet(t, ctx, timesheetRepo, organizationID, contractorID)

	svc := newInvoiceService()

	built, err := svc.BuildFromTimesheets(ctx, organizationID, invoice.BuildInvoiceRequest{TimesheetIDs: []string{ts.ID}})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, built.ID, organizationID)
	require.NoError(t, err)

	rejected, err := svc.Reject(ctx, built.ID, organizationID, invoice.RejectInvoiceRequest{Reason: "Rate does not match engagement"})
	require.NoError(t, err)
	assert.Equal(t, string(invoice.InvoiceStatusRejected), rejected.Status)

	// Rejected invoices do not go back into the submission queue
	_, err = svc.Submit(ctx, built.ID, organizationID)
	require.ErrorIs(t, err, invoice.ErrInvoiceNotDraft)

	fetched, err := svc.GetByID(ctx, built.ID, organizationID)
	require.NoError(t, err)
	assert.Equal(t, string(invoice.InvoiceStatusRejected), fetched.Status)
}

func TestInvoiceBuildGuards(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	organizationID := createTestOrganization(t, ctx)
	timesheetRepo := postgresql.NewTimesheetRepository(testDB)
	svc := newInvoiceService()

	firstSupplier := createTestSupplier(t, ctx, organizationID, "Ubuntu Consulting")
	firstContractor := createContractorForSupplier(t, ctx, organizationID, firstSupplier, "Thandi Nkosi", "thandi@example.com")
	createActiveEngagement(t, ctx, organizationID, firstSupplier, firstContractor, "SC-2025-001", decimal.NewFromInt(450))

	secondSupplier := createTestSupplier(t, ctx, organizationID, "Kalahari Talent")
	secondContractor := createContractorForSupplier(t, ctx, organizationID, secondSupplier, "Sipho Dlamini", "sipho@example.com")
	createActiveEngagement(t, ctx, organizationID, secondSupplier, secondContractor, "SC-2025-002", decimal.NewFromInt(520))

	firstTS := createApprovedTimesheet(t, ctx, timesheetRepo, organizationID, firstContractor)
	secondTS := createApprovedTimesheet(t, ctx, timesheetRepo, organizationID, secondContractor)

	// One invoice bills one supplier
	_, err := svc.BuildFromTimesheets(ctx, organizationID, invoice.BuildInvoiceRequest{TimesheetIDs: []string{firstTS.ID, secondTS.ID}})
	require.ErrorIs(t, err, invoice.ErrTimesheetsMixedParties)

	// Draft timesheets cannot be billed
	draft := createDraftTimesheet(t, ctx, timesheetRepo, organizationID, firstContractor)
	_, err = svc.BuildFromTimesheets(ctx, organizationID, invoice.BuildInvoiceRequest{TimesheetIDs: []string{draft.ID}})
	require.ErrorIs(t, err, invoice.ErrTimesheetsNotApproved)
}
