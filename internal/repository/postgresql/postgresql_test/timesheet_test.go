package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/timesheet"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
	"github.com/siyanda-labs/contractor-backend-go/internal/repository/postgresql"
)

var testDB *database.DB

func testInit(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
}

func truncateTables(t *testing.T, ctx context.Context) {
	tables := []string{
		"withholding_instructions", "tax_classifications",
		"invoice_line_items", "invoices",
		"timesheet_entries", "timesheets", "engagements", "supplier_contracts",
		"contractors", "suppliers", "organization_sequences", "organizations",
	}
	for _, table := range tables {
		_, err := testDB.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createTestOrganization(t *testing.T, ctx context.Context) string {
	var organizationID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO organizations (id, name, username, created_at, updated_at)
		VALUES (uuidv7(), 'Test Org', 'test-org', NOW(), NOW())
		RETURNING id
	`).Scan(&organizationID)
	require.NoError(t, err)
	return organizationID
}

func createTestContractor(t *testing.T, ctx context.Context, organizationID string) string {
	var supplierID string
	err := testDB.QueryRow(ctx, `
		INSERT INTO suppliers (id, organization_id, name, created_at, updated_at)
		VALUES (uuidv7(), $1, 'Test Supplier', NOW(), NOW())
		RETURNING id
	`, organizationID).Scan(&supplierID)
	require.NoError(t, err)

	var contractorID string
	err = testDB.QueryRow(ctx, `
		INSERT INTO contractors (id, organization_id, supplier_id, full_name, email, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, 'Thandi Nkosi', 'thandi@example.com', NOW(), NOW())
		RETURNING id
	`, organizationID, supplierID).Scan(&contractorID)
	require.NoError(t, err)
	return contractorID
}

func createDraftTimesheet(t *testing.T, ctx context.Context, repo timesheet.TimesheetRepository, organizationID, contractorID string) timesheet.Timesheet {
	ts := timesheet.Timesheet{
		OrganizationID: organizationID,
		ContractorID:   contractorID,
		PeriodStart:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:      time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Entries: []timesheet.Entry{
			{WorkDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), Hours: decimal.NewFromInt(8)},
		},
		TotalHours: decimal.NewFromInt(8),
		Status:     timesheet.TimesheetStatusDraft,
	}

	created, err := repo.Create(ctx, ts)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	return created
}

func TestTimesheetStatusTransitions(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	organizationID := createTestOrganization(t, ctx)
	contractorID := createTestContractor(t, ctx, organizationID)
	repo := postgresql.NewTimesheetRepository(testDB)

	created := createDraftTimesheet(t, ctx, repo, organizationID, contractorID)

	// Approve before submit must not fire
	ok, err := repo.Approve(ctx, created.ID, organizationID, contractorID, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Submit(ctx, created.ID, organizationID, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	// Second submit is a no-op
	ok, err = repo.Submit(ctx, created.ID, organizationID, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Approve(ctx, created.ID, organizationID, contractorID, time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	// Approved timesheets cannot be deleted
	ok, err = repo.Delete(ctx, created.ID, organizationID)
	require.NoError(t, err)
	assert.False(t, ok)

	fetched, err := repo.GetByID(ctx, created.ID, organizationID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.TimesheetStatusApproved, fetched.Status)
	assert.NotNil(t, fetched.ApprovedAt)
}

func TestTimesheetRejectIsTerminalForSubmit(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	organizationID := createTestOrganization(t, ctx)
	contractorID := createTestContractor(t, ctx, organizationID)
	repo := postgresql.NewTimesheetRepository(testDB)

	created := createDraftTimesheet(t, ctx, repo, organizationID, contractorID)

	ok, err := repo.Submit(ctx, created.ID, organizationID, time.Now())
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = repo.Reject(ctx, created.ID, organizationID, "Missing entries for week two")
	require.NoError(t, err)
	assert.True(t, ok)

	fetched, err := repo.GetByID(ctx, created.ID, organizationID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.TimesheetStatusRejected, fetched.Status)
	require.NotNil(t, fetched.RejectionReason)
	assert.Equal(t, "Missing entries for week two", *fetched.RejectionReason)

	// Submit only fires from draft; a rejected timesheet stays rejected
	ok, err = repo.Submit(ctx, created.ID, organizationID, time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	fetched, err = repo.GetByID(ctx, created.ID, organizationID)
	require.NoError(t, err)
	assert.Equal(t, timesheet.TimesheetStatusRejected, fetched.Status)
	require.NotNil(t, fetched.RejectionReason)

	// Rejected timesheets can still be deleted
	ok, err = repo.Delete(ctx, created.ID, organizationID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSequenceRepositoryNext(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	organizationID := createTestOrganization(t, ctx)
	repo := postgresql.NewSequenceRepository(testDB)

	first, err := repo.Next(ctx, organizationID, "invoice", 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first)

	second, err := repo.Next(ctx, organizationID, "invoice", 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second)

	// Different name and year run their own counters
	other, err := repo.Next(ctx, organizationID, "withholding", 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)

	nextYear, err := repo.Next(ctx, organizationID, "invoice", 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(1), nextYear)
}
