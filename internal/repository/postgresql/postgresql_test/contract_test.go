package postgresql_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contract"
	"github.com/siyanda-labs/contractor-backend-go/internal/repository/postgresql"
	contractsvc "github.com/siyanda-labs/contractor-backend-go/internal/service/contract"
)

func newContractService() contract.ContractService {
	return contractsvc.NewContractService(
		testDB,
		postgresql.NewContractRepository(testDB),
		postgresql.NewEngagementRepository(testDB),
		postgresql.NewSupplierRepository(testDB),
		postgresql.NewContractorRepository(testDB),
	)
}

func TestContractGatesEngagements(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	organizationID := createTestOrganization(t, ctx)
	supplierID := createTestSupplier(t, ctx, organizationID, "Ubuntu Consulting")
	contractorID := createContractorForSupplier(t, ctx, organizationID, supplierID, "Thandi Nkosi", "thandi@example.com")

	svc := newContractService()

	created, err := svc.Create(ctx, organizationID, contract.CreateContractRequest{
		SupplierID:     supplierID,
		ContractNumber: "SC-2025-001",
		StartDate:      "2025-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, string(contract.ContractStatusDraft), created.Status)

	engagementReq := contract.CreateEngagementRequest{
		ContractID:   created.ID,
		ContractorID: contractorID,
		RoleTitle:    "Backend Developer",
		Rate:         decimal.NewFromInt(450),
		RateType:     "hourly",
		Currency:     "ZAR",
		StartDate:    "2025-02-01",
	}

	// Unsigned contracts cannot carry engagements
	_, err = svc.CreateEngagement(ctx, organizationID, engagementReq)
	require.ErrorIs(t, err, contract.ErrContractNotActive)

	signed, err := svc.Sign(ctx, created.ID, organizationID, contractorID)
	require.NoError(t, err)
	assert.Equal(t, string(contract.ContractStatusActive), signed.Status)

	engagement, err := svc.CreateEngagement(ctx, organizationID, engagementReq)
	require.NoError(t, err)
	assert.True(t, engagement.IsActive)

	// A contractor holds at most one active engagement per window
	overlapping := engagementReq
	overlapping.StartDate = "2025-03-01"
	_, err = svc.CreateEngagement(ctx, organizationID, overlapping)
	require.ErrorIs(t, err, contract.ErrEngagementOverlap)
}

func TestContractExpiresAfterEndDate(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateTables(t, ctx)

	organizationID := createTestOrganization(t, ctx)
	supplierID := createTestSupplier(t, ctx, organizationID, "Ubuntu Consulting")
	contractorID := createContractorForSupplier(t, ctx, organizationID, supplierID, "Thandi Nkosi", "thandi@example.com")

	svc := newContractService()

	endDate := "2024-12-31"
	created, err := svc.Create(ctx, organizationID, contract.CreateContractRequest{
		SupplierID:     supplierID,
		ContractNumber: "SC-2024-007",
		StartDate:      "2024-01-01",
		EndDate:        &endDate,
	})
	require.NoError(t, err)

	signed, err := svc.Sign(ctx, created.ID, organizationID, contractorID)
	require.NoError(t, err)
	assert.Equal(t, string(contract.ContractStatusActive), signed.Status)

	// The end date has passed, so the next read flips it to expired
	fetched, err := svc.GetByID(ctx, created.ID, organizationID)
	require.NoError(t, err)
	assert.Equal(t, string(contract.ContractStatusExpired), fetched.Status)

	_, err = svc.Terminate(ctx, created.ID, organizationID, contract.TerminateContractRequest{Reason: "supplier wound down"})
	require.ErrorIs(t, err, contract.ErrContractAlreadyTerminal)

	_, err = svc.CreateEngagement(ctx, organizationID, contract.CreateEngagementRequest{
		ContractID:   created.ID,
		ContractorID: contractorID,
		RoleTitle:    "Backend Developer",
		Rate:         decimal.NewFromInt(450),
		RateType:     "hourly",
		Currency:     "ZAR",
		StartDate:    "2024-06-01",
	})
	require.ErrorIs(t, err, contract.ErrContractNotActive)
}
