package organization

import (
	"context"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/organization"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type OrganizationServiceImpl struct {
	db               *database.DB
	organizationRepo organization.OrganizationRepository
}

func NewOrganizationService(db *database.DB, organizationRepo organization.OrganizationRepository) organization.OrganizationService {
	return &OrganizationServiceImpl{db: db, organizationRepo: organizationRepo}
}

func (s *OrganizationServiceImpl) Get(ctx context.Context, organizationID string) (organization.OrganizationResponse, error) {
	org, err := s.organizationRepo.GetByID(ctx, organizationID)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}
	return organization.ToResponse(org), nil
}

func (s *OrganizationServiceImpl) Update(ctx context.Context, organizationID string, req organization.UpdateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	org, err := s.organizationRepo.GetByID(ctx, organizationID)
	if err != nil {
		return organization.OrganizationResponse{}, err
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.RegistrationNumber != nil {
		org.RegistrationNumber = req.RegistrationNumber
	}
	if req.TaxNumber != nil {
		org.TaxNumber = req.TaxNumber
	}

	if err := s.organizationRepo.Update(ctx, org); err != nil {
		return organization.OrganizationResponse{}, err
	}

	return organization.ToResponse(org), nil
}
