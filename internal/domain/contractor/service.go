package contractor

import "context"

type ContractorService interface {
	Create(ctx context.Context, organizationID string, req CreateContractorRequest) (ContractorResponse, error)
	GetByID(ctx context.Context, id string, organizationID string) (ContractorResponse, error)
	List(ctx context.Context, organizationID string) ([]ContractorResponse, error)
	ListBySupplier(ctx context.Context, supplierID string, organizationID string) ([]ContractorResponse, error)
	Update(ctx context.Context, organizationID string, req UpdateContractorRequest) (ContractorResponse, error)
	Delete(ctx context.Context, id string, organizationID string) error
}
