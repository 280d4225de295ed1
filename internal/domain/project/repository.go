package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string, organizationID string) (Project, error)
	GetByOrganizationID(ctx context.Context, organizationID string) ([]Project, error)
	ExistsByCode(ctx context.Context, code string, organizationID string) (bool, error)
	Update(ctx context.Context, req UpdateProjectRequest, organizationID string) error
	Delete(ctx context.Context, id string, organizationID string) error
}
