package contract

import (
	"context"
	"time"
)

type ContractRepository interface {
	Create(ctx context.Context, c SupplierContract) (SupplierContract, error)
	GetByID(ctx context.Context, id string, organizationID string) (SupplierContract, error)
	GetByOrganizationID(ctx context.Context, organizationID string) ([]SupplierContract, error)
	GetBySupplierID(ctx context.Context, supplierID string, organizationID string) ([]SupplierContract, error)
	ExistsByContractNumber(ctx context.Context, contractNumber string, organizationID string) (bool, error)
	Update(ctx context.Context, req UpdateContractRequest, organizationID string) error

	// Sign flips draft to active in one compare-and-swap statement.
	// Returns false if the contract was not in draft.
	Sign(ctx context.Context, id, organizationID, signedBy string, signedAt time.Time) (bool, error)

	// Terminate flips any non-terminal status to terminated. Returns false
	// when the contract was already terminated or expired.
	Terminate(ctx context.Context, id, organizationID, reason string, terminatedAt time.Time) (bool, error)

	// ExpireOutdated flips active contracts whose end date has passed to
	// expired. Callers run it before reads so status reflects the calendar.
	ExpireOutdated(ctx context.Context, organizationID string) error

	// Delete removes a draft contract. Returns false if the contract was
	// not in draft.
	Delete(ctx context.Context, id string, organizationID string) (bool, error)

	CountEngagements(ctx context.Context, id string, organizationID string) (int64, error)
}

type EngagementRepository interface {
	Create(ctx context.Context, e Engagement) (Engagement, error)
	GetByID(ctx context.Context, id string, organizationID string) (Engagement, error)
	GetByContractID(ctx context.Context, contractID string, organizationID string) ([]Engagement, error)

	// GetActiveByContractorID returns every active engagement for a
	// contractor. Invoicing requires exactly one; callers must not guess
	// when zero or several come back.
	GetActiveByContractorID(ctx context.Context, contractorID string, organizationID string) ([]Engagement, error)

	// HasActiveOverlap reports whether the contractor already has an
	// active engagement whose validity window intersects [start, end).
	// A nil end means open-ended.
	HasActiveOverlap(ctx context.Context, contractorID, organizationID string, start time.Time, end *time.Time) (bool, error)

	Deactivate(ctx context.Context, id string, organizationID string) error
	Delete(ctx context.Context, id string, organizationID string) error
}
