package contractor

import "context"

type ContractorRepository interface {
	Create(ctx context.Context, c Contractor) (Contractor, error)
	GetByID(ctx context.Context, id string, organizationID string) (Contractor, error)
	GetByOrganizationID(ctx context.Context, organizationID string) ([]Contractor, error)
	GetBySupplierID(ctx context.Context, supplierID string, organizationID string) ([]Contractor, error)
	Update(ctx context.Context, req UpdateContractorRequest, organizationID string) error
	Delete(ctx context.Context, id string, organizationID string) error
	CountTimesheets(ctx context.Context, id string, organizationID string) (int64, error)
	CountEngagements(ctx context.Context, id string, organizationID string) (int64, error)
}
