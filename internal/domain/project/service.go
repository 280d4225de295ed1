package project

import "context"

type ProjectService interface {
	Create(ctx context.Context, organizationID string, req CreateProjectRequest) (ProjectResponse, error)
	GetByID(ctx context.Context, id string, organizationID string) (ProjectResponse, error)
	List(ctx context.Context, organizationID string) ([]ProjectResponse, error)
	Update(ctx context.Context, organizationID string, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string, organizationID string) error
}
