package organization

import "context"

type OrganizationService interface {
	Get(ctx context.Context, organizationID string) (OrganizationResponse, error)
	Update(ctx context.Context, organizationID string, req UpdateOrganizationRequest) (OrganizationResponse, error)
}
