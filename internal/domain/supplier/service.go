package supplier

import "context"

type SupplierService interface {
	Create(ctx context.Context, organizationID string, req CreateSupplierRequest) (SupplierResponse, error)
	GetByID(ctx context.Context, id string, organizationID string) (SupplierResponse, error)
	List(ctx context.Context, organizationID string) ([]SupplierResponse, error)
	Update(ctx context.Context, organizationID string, req UpdateSupplierRequest) (SupplierResponse, error)
	Delete(ctx context.Context, id string, organizationID string) error
}
