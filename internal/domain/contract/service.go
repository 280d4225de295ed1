package contract

import "context"

type ContractService interface {
	Create(ctx context.Context, organizationID string, req CreateContractRequest) (ContractResponse, error)
	GetByID(ctx context.Context, id string, organizationID string) (ContractResponse, error)
	List(ctx context.Context, organizationID string) ([]ContractResponse, error)
	ListBySupplier(ctx context.Context, supplierID string, organizationID string) ([]ContractResponse, error)
	Update(ctx context.Context, organizationID string, req UpdateContractRequest) (ContractResponse, error)
	Sign(ctx context.Context, id string, organizationID string, signedBy string) (ContractResponse, error)
	Terminate(ctx context.Context, id string, organizationID string, req TerminateContractRequest) (ContractResponse, error)
	Delete(ctx context.Context, id string, organizationID string) error

	CreateEngagement(ctx context.Context, organizationID string, req CreateEngagementRequest) (EngagementResponse, error)
	GetEngagement(ctx context.Context, id string, organizationID string) (EngagementResponse, error)
	ListEngagements(ctx context.Context, contractID string, organizationID string) ([]EngagementResponse, error)
	DeactivateEngagement(ctx context.Context, id string, organizationID string) (EngagementResponse, error)
	DeleteEngagement(ctx context.Context, id string, organizationID string) error
}
