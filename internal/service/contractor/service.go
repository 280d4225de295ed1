package contractor

import (
	"context"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contractor"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/supplier"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type ContractorServiceImpl struct {
	db             *database.DB
	contractorRepo contractor.ContractorRepository
	supplierRepo   supplier.SupplierRepository
}

func NewContractorService(
	db *database.DB,
	contractorRepo contractor.ContractorRepository,
	supplierRepo supplier.SupplierRepository,
) contractor.ContractorService {
	return &ContractorServiceImpl{
		db:             db,
		contractorRepo: contractorRepo,
		supplierRepo:   supplierRepo,
	}
}

func (s *ContractorServiceImpl) Create(ctx context.Context, organizationID string, req contractor.CreateContractorRequest) (contractor.ContractorResponse, error) {
	if err := req.Validate(); err != nil {
		return contractor.ContractorResponse{}, err
	}

	if _, err := s.supplierRepo.GetByID(ctx, req.SupplierID, organizationID); err != nil {
		return contractor.ContractorResponse{}, err
	}

	created, err := s.contractorRepo.Create(ctx, contractor.Contractor{
		OrganizationID: organizationID,
		SupplierID:     req.SupplierID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		RoleTitle:      req.RoleTitle,
		TaxReference:   req.TaxReference,
	})
	if err != nil {
		return contractor.ContractorResponse{}, err
	}

	return contractor.ToResponse(created), nil
}

func (s *ContractorServiceImpl) GetByID(ctx context.Context, id string, organizationID string) (contractor.ContractorResponse, error) {
	c, err := s.contractorRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return contractor.ContractorResponse{}, err
	}
	return contractor.ToResponse(c), nil
}

func (s *ContractorServiceImpl) List(ctx context.Context, organizationID string) ([]contractor.ContractorResponse, error) {
	contractors, err := s.contractorRepo.GetByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return toResponses(contractors), nil
}

func (s *ContractorServiceImpl) ListBySupplier(ctx context.Context, supplierID string, organizationID string) ([]contractor.ContractorResponse, error) {
	contractors, err := s.contractorRepo.GetBySupplierID(ctx, supplierID, organizationID)
	if err != nil {
		return nil, err
	}
	return toResponses(contractors), nil
}

func toResponses(contractors []contractor.Contractor) []contractor.ContractorResponse {
	responses := make([]contractor.ContractorResponse, 0, len(contractors))
	for _, c := range contractors {
		responses = append(responses, contractor.ToResponse(c))
	}
	return responses
}

func (s *ContractorServiceImpl) Update(ctx context.Context, organizationID string, req contractor.UpdateContractorRequest) (contractor.ContractorResponse, error) {
	if err := req.Validate(); err != nil {
		return contractor.ContractorResponse{}, err
	}

	if err := s.contractorRepo.Update(ctx, req, organizationID); err != nil {
		return contractor.ContractorResponse{}, err
	}

	return s.GetByID(ctx, req.ID, organizationID)
}

func (s *ContractorServiceImpl) Delete(ctx context.Context, id string, organizationID string) error {
	timesheets, err := s.contractorRepo.CountTimesheets(ctx, id, organizationID)
	if err != nil {
		return err
	}
	if timesheets > 0 {
		return contractor.ErrContractorHasTimesheets
	}

	engagements, err := s.contractorRepo.CountEngagements(ctx, id, organizationID)
	if err != nil {
		return err
	}
	if engagements > 0 {
		return contractor.ErrContractorHasEngagements
	}

	return s.contractorRepo.Delete(ctx, id, organizationID)
}
