package supplier

import "context"

type SupplierRepository interface {
	Create(ctx context.Context, s Supplier) (Supplier, error)
	GetByID(ctx context.Context, id string, organizationID string) (Supplier, error)
	GetByOrganizationID(ctx context.Context, organizationID string) ([]Supplier, error)
	Update(ctx context.Context, req UpdateSupplierRequest, organizationID string) error
	Delete(ctx context.Context, id string, organizationID string) error
	CountContractors(ctx context.Context, id string, organizationID string) (int64, error)
}
