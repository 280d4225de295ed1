package contract

import (
	"context"
	"time"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contract"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contractor"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/supplier"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"
)

type ContractServiceImpl struct {
	db             *database.DB
	contractRepo   contract.ContractRepository
	engagementRepo contract.EngagementRepository
	supplierRepo   supplier.SupplierRepository
	contractorRepo contractor.ContractorRepository
}

func NewContractService(
	db *database.DB,
	contractRepo contract.ContractRepository,
	engagementRepo contract.EngagementRepository,
	supplierRepo supplier.SupplierRepository,
	contractorRepo contractor.ContractorRepository,
) contract.ContractService {
	return &ContractServiceImpl{
		db:             db,
		contractRepo:   contractRepo,
		engagementRepo: engagementRepo,
		supplierRepo:   supplierRepo,
		contractorRepo: contractorRepo,
	}
}

func (s *ContractServiceImpl) Create(ctx context.Context, organizationID string, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	if _, err := s.supplierRepo.GetByID(ctx, req.SupplierID, organizationID); err != nil {
		return contract.ContractResponse{}, err
	}

	exists, err := s.contractRepo.ExistsByContractNumber(ctx, req.ContractNumber, organizationID)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	if exists {
		return contract.ContractResponse{}, contract.ErrContractNumberExists
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		d, _ := validator.IsValidDate(*req.EndDate)
		endDate = &d
	}

	created, err := s.contractRepo.Create(ctx, contract.SupplierContract{
		OrganizationID: organizationID,
		SupplierID:     req.SupplierID,
		ContractNumber: req.ContractNumber,
		Title:          req.Title,
		StartDate:      startDate,
		EndDate:        endDate,
	})
	if err != nil {
		return contract.ContractResponse{}, err
	}

	return contract.ToContractResponse(created), nil
}

func (s *ContractServiceImpl) GetByID(ctx context.Context, id string, organizationID string) (contract.ContractResponse, error) {
	if err := s.contractRepo.ExpireOutdated(ctx, organizationID); err != nil {
		return contract.ContractResponse{}, err
	}

	c, err := s.contractRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return contract.ToContractResponse(c), nil
}

func (s *ContractServiceImpl) List(ctx context.Context, organizationID string) ([]contract.ContractResponse, error) {
	if err := s.contractRepo.ExpireOutdated(ctx, organizationID); err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.GetByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	return toContractResponses(contracts), nil
}

func (s *ContractServiceImpl) ListBySupplier(ctx context.Context, supplierID string, organizationID string) ([]contract.ContractResponse, error) {
	if err := s.contractRepo.ExpireOutdated(ctx, organizationID); err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.GetBySupplierID(ctx, supplierID, organizationID)
	if err != nil {
		return nil, err
	}
	return toContractResponses(contracts), nil
}

func toContractResponses(contracts []contract.SupplierContract) []contract.ContractResponse {
	responses := make([]contract.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, contract.ToContractResponse(c))
	}
	return responses
}

func (s *ContractServiceImpl) Update(ctx context.Context, organizationID string, req contract.UpdateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	if err := s.contractRepo.Update(ctx, req, organizationID); err != nil {
		return contract.ContractResponse{}, err
	}

	return s.GetByID(ctx, req.ID, organizationID)
}

func (s *ContractServiceImpl) Sign(ctx context.Context, id string, organizationID string, signedBy string) (contract.ContractResponse, error) {
	ok, err := s.contractRepo.Sign(ctx, id, organizationID, signedBy, time.Now())
	if err != nil {
		return contract.ContractResponse{}, err
	}
	if !ok {
		if _, err := s.contractRepo.GetByID(ctx, id, organizationID); err != nil {
			return contract.ContractResponse{}, err
		}
		return contract.ContractResponse{}, contract.ErrContractNotDraft
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *ContractServiceImpl) Terminate(ctx context.Context, id string, organizationID string, req contract.TerminateContractRequest) (contract.ContractResponse, error) {
	if err := s.contractRepo.ExpireOutdated(ctx, organizationID); err != nil {
		return contract.ContractResponse{}, err
	}

	ok, err := s.contractRepo.Terminate(ctx, id, organizationID, req.Reason, time.Now())
	if err != nil {
		return contract.ContractResponse{}, err
	}
	if !ok {
		if _, err := s.contractRepo.GetByID(ctx, id, organizationID); err != nil {
			return contract.ContractResponse{}, err
		}
		return contract.ContractResponse{}, contract.ErrContractAlreadyTerminal
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *ContractServiceImpl) Delete(ctx context.Context, id string, organizationID string) error {
	count, err := s.contractRepo.CountEngagements(ctx, id, organizationID)
	if err != nil {
		return err
	}
	if count > 0 {
		return contract.ErrContractHasEngagements
	}

	ok, err := s.contractRepo.Delete(ctx, id, organizationID)
	if err != nil {
		return err
	}
	if !ok {
		if _, err := s.contractRepo.GetByID(ctx, id, organizationID); err != nil {
			return err
		}
		return contract.ErrContractNotDraft
	}

	return nil
}

func (s *ContractServiceImpl) CreateEngagement(ctx context.Context, organizationID string, req contract.CreateEngagementRequest) (contract.EngagementResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.EngagementResponse{}, err
	}

	if err := s.contractRepo.ExpireOutdated(ctx, organizationID); err != nil {
		return contract.EngagementResponse{}, err
	}

	c, err := s.contractRepo.GetByID(ctx, req.ContractID, organizationID)
	if err != nil {
		return contract.EngagementResponse{}, err
	}
	if c.Status != contract.ContractStatusActive {
		return contract.EngagementResponse{}, contract.ErrContractNotActive
	}

	if _, err := s.contractorRepo.GetByID(ctx, req.ContractorID, organizationID); err != nil {
		return contract.EngagementResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		d, _ := validator.IsValidDate(*req.EndDate)
		endDate = &d
	}

	overlap, err := s.engagementRepo.HasActiveOverlap(ctx, req.ContractorID, organizationID, startDate, endDate)
	if err != nil {
		return contract.EngagementResponse{}, err
	}
	if overlap {
		return contract.EngagementResponse{}, contract.ErrEngagementOverlap
	}

	created, err := s.engagementRepo.Create(ctx, contract.Engagement{
		OrganizationID: organizationID,
		ContractID:     req.ContractID,
		ContractorID:   req.ContractorID,
		RoleTitle:      req.RoleTitle,
		Rate:           req.Rate,
		RateType:       contract.RateType(req.RateType),
		Currency:       req.Currency,
		StartDate:      startDate,
		EndDate:        endDate,
	})
	if err != nil {
		return contract.EngagementResponse{}, err
	}

	return contract.ToEngagementResponse(created), nil
}

func (s *ContractServiceImpl) GetEngagement(ctx context.Context, id string, organizationID string) (contract.EngagementResponse, error) {
	e, err := s.engagementRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return contract.EngagementResponse{}, err
	}
	return contract.ToEngagementResponse(e), nil
}

func (s *ContractServiceImpl) ListEngagements(ctx context.Context, contractID string, organizationID string) ([]contract.EngagementResponse, error) {
	engagements, err := s.engagementRepo.GetByContractID(ctx, contractID, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]contract.EngagementResponse, 0, len(engagements))
	for _, e := range engagements {
		responses = append(responses, contract.ToEngagementResponse(e))
	}
	return responses, nil
}

func (s *ContractServiceImpl) DeactivateEngagement(ctx context.Context, id string, organizationID string) (contract.EngagementResponse, error) {
	if err := s.engagementRepo.Deactivate(ctx, id, organizationID); err != nil {
		return contract.EngagementResponse{}, err
	}
	return s.GetEngagement(ctx, id, organizationID)
}

func (s *ContractServiceImpl) DeleteEngagement(ctx context.Context, id string, organizationID string) error {
	return s.engagementRepo.Delete(ctx, id, organizationID)
}
