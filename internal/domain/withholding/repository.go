package withholding

import (
	"context"
	"time"
)

type ClassificationRepository interface {
	Create(ctx context.Context, c TaxClassification) (TaxClassification, error)
	GetByID(ctx context.Context, id string, organizationID string) (TaxClassification, error)
	GetByContractorID(ctx context.Context, contractorID string, organizationID string) ([]TaxClassification, error)

	// HasOverlap reports whether another classification for the same
	// (contractor, engagement) pair intersects [from, to). A nil to means
	// open-ended. excludeID skips the row being updated.
	HasOverlap(ctx context.Context, contractorID string, engagementID *string, organizationID string, from time.Time, to *time.Time, excludeID *string) (bool, error)

	Delete(ctx context.Context, id string, organizationID string) error
}

type InstructionListFilter struct {
	ContractorID    *string
	WithholdingType *WithholdingType
	SyncStatus      *SyncStatus
	TaxYear         *int
}

type InstructionRepository interface {
	Create(ctx context.Context, instr WithholdingInstruction) (WithholdingInstruction, error)
	GetByID(ctx context.Context, id string, organizationID string) (WithholdingInstruction, error)
	List(ctx context.Context, organizationID string, filter InstructionListFilter) ([]WithholdingInstruction, error)

	// ExistsForPeriod enforces the one-instruction-per
	// (contractor, period, type) rule.
	ExistsForPeriod(ctx context.Context, contractorID string, organizationID string, wtype WithholdingType, periodStart, periodEnd time.Time) (bool, error)

	// Sync sub-state machine, each transition a compare-and-swap
	// statement returning false when the precondition status did not hold.
	MarkInProgress(ctx context.Context, id, organizationID string) (bool, error)
	MarkSynced(ctx context.Context, id, organizationID, externalReference string, syncedAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, id, organizationID, syncError string) (bool, error)
	Retry(ctx context.Context, id, organizationID string) (bool, error)

	// Delete removes an instruction unless it is synced. Returns false
	// when the instruction is synced.
	Delete(ctx context.Context, id string, organizationID string) (bool, error)
}
