package project

import (
	"context"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/project"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type ProjectServiceImpl struct {
	db          *database.DB
	projectRepo project.ProjectRepository
}

func NewProjectService(db *database.DB, projectRepo project.ProjectRepository) project.ProjectService {
	return &ProjectServiceImpl{db: db, projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) Create(ctx context.Context, organizationID string, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	exists, err := s.projectRepo.ExistsByCode(ctx, req.Code, organizationID)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	if exists {
		return project.ProjectResponse{}, project.ErrProjectCodeExists
	}

	created, err := s.projectRepo.Create(ctx, project.Project{
		OrganizationID: organizationID,
		Name:           req.Name,
		Code:           req.Code,
		Description:    req.Description,
		IsActive:       true,
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.ToResponse(created), nil
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string, organizationID string) (project.ProjectResponse, error) {
	p, err := s.projectRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	return project.ToResponse(p), nil
}

func (s *ProjectServiceImpl) List(ctx context.Context, organizationID string) ([]project.ProjectResponse, error) {
	projects, err := s.projectRepo.GetByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ToResponse(p))
	}
	return responses, nil
}

func (s *ProjectServiceImpl) Update(ctx context.Context, organizationID string, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	if err := s.projectRepo.Update(ctx, req, organizationID); err != nil {
		return project.ProjectResponse{}, err
	}

	return s.GetByID(ctx, req.ID, organizationID)
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id string, organizationID string) error {
	return s.projectRepo.Delete(ctx, id, organizationID)
}
