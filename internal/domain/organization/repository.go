package organization

import "context"

type OrganizationRepository interface {
	Create(ctx context.Context, org Organization) (Organization, error)
	GetByID(ctx context.Context, id string) (Organization, error)
	GetByUsername(ctx context.Context, username string) (Organization, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, org Organization) error
}
