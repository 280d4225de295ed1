package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/withholding"
	"github.com/siyanda-labs/contractor-backend-go/internal/repository/postgresql"
)

func createPendingInstruction(t *testing.T, ctx context.Context, organizationID, contractorID string) withholding.WithholdingInstruction {
	classification, err := postgresql.NewClassificationRepository(testDB).Create(ctx, withholding.TaxClassification{
		OrganizationID: organizationID,
		ContractorID:   contractorID,
		Classification: withholding.ClassificationDeemedEmployee,
		EffectiveFrom:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		RiskScore:      72,
	})
	require.NoError(t, err)

	instr, err := postgresql.NewInstructionRepository(testDB).Create(ctx, withholding.WithholdingInstruction{
		OrganizationID:    organizationID,
		ContractorID:      contractorID,
		TaxClassification: classification.ID,
		InstructionNumber: "WHT-2025-000001",
		WithholdingType:   withholding.WithholdingTypePAYE,
		TaxYear:           2025,
		PeriodStart:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:         time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		GrossAmount:       decimal.NewFromInt(25000),
		WithholdingAmount: decimal.NewFromInt(6500),
		NetAmount:         decimal.NewFromInt(18500),
	})
	require.NoError(t, err)
	require.Equal(t, withholding.SyncStatusPending, instr.SyncStatus)
	return instr
}

func TestInstructionSyncTransitions(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	organizationID := createTestOrganization(t, ctx)
	contractorID := createTestContractor(t, ctx, organizationID)
	repo := postgresql.NewInstructionRepository(testDB)

	instr := createPendingInstruction(t, ctx, organizationID, contractorID)

	// Synced requires an in-progress attempt
	ok, err := repo.MarkSynced(ctx, instr.ID, organizationID, "SARS-REF-001", time.Now())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.MarkInProgress(ctx, instr.ID, organizationID)
	require.NoError(t, err)
	assert.True(t, ok)

	// A second dispatch attempt must not fire while one is running
	ok, err = repo.MarkInProgress(ctx, instr.ID, organizationID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.MarkFailed(ctx, instr.ID, organizationID, "gateway timeout")
	require.NoError(t, err)
	assert.True(t, ok)

	fetched, err := repo.GetByID(ctx, instr.ID, organizationID)
	require.NoError(t, err)
	assert.Equal(t, withholding.SyncStatusFailed, fetched.SyncStatus)
	assert.Equal(t, 1, fetched.RetryCount)
	require.NotNil(t, fetched.SyncError)
	assert.Equal(t, "gateway timeout", *fetched.SyncError)

	// Retry clears the error and queues the instruction again
	ok, err = repo.Retry(ctx, instr.ID, organizationID)
	require.NoError(t, err)
	assert.True(t, ok)

	fetched, err = repo.GetByID(ctx, instr.ID, organizationID)
	require.NoError(t, err)
	assert.Equal(t, withholding.SyncStatusPending, fetched.SyncStatus)
	assert.Nil(t, fetched.SyncError)
	assert.Equal(t, 1, fetched.RetryCount)

	ok, err = repo.MarkInProgress(ctx, instr.ID, organizationID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkSynced(ctx, instr.ID, organizationID, "SARS-REF-001", time.Now())
	require.NoError(t, err)
	assert.True(t, ok)

	fetched, err = repo.GetByID(ctx, instr.ID, organizationID)
	require.NoError(t, err)
	assert.Equal(t, withholding.SyncStatusSynced, fetched.SyncStatus)
	require.NotNil(t, fetched.ExternalReference)
	assert.Equal(t, "SARS-REF-001", *fetched.ExternalReference)
	assert.NotNil(t, fetched.SyncedAt)

	// Synced instructions are immutable
	ok, err = repo.MarkInProgress(ctx, instr.ID, organizationID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, instr.ID, organizationID)
	require.NoError(t, err)
	assert.False(t, ok)
}
