package supplier

import (
	"context"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/supplier"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type SupplierServiceImpl struct {
	db           *database.DB
	supplierRepo supplier.SupplierRepository
}

func NewSupplierService(db *database.DB, supplierRepo supplier.SupplierRepository) supplier.SupplierService {
	return &SupplierServiceImpl{db: db, supplierRepo: supplierRepo}
}

func (s *SupplierServiceImpl) Create(ctx context.Context, organizationID string, req supplier.CreateSupplierRequest) (supplier.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return supplier.SupplierResponse{}, err
	}

	created, err := s.supplierRepo.Create(ctx, supplier.Supplier{
		OrganizationID:     organizationID,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		TaxNumber:          req.TaxNumber,
		Email:              req.Email,
		Phone:              req.Phone,
		AddressLine:        req.AddressLine,
	})
	if err != nil {
		return supplier.SupplierResponse{}, err
	}

	return supplier.ToResponse(created), nil
}

func (s *SupplierServiceImpl) GetByID(ctx context.Context, id string, organizationID string) (supplier.SupplierResponse, error) {
	sup, err := s.supplierRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return supplier.SupplierResponse{}, err
	}
	return supplier.ToResponse(sup), nil
}

func (s *SupplierServiceImpl) List(ctx context.Context, organizationID string) ([]supplier.SupplierResponse, error) {
	suppliers, err := s.supplierRepo.GetByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]supplier.SupplierResponse, 0, len(suppliers))
	for _, sup := range suppliers {
		responses = append(responses, supplier.ToResponse(sup))
	}
	return responses, nil
}

func (s *SupplierServiceImpl) Update(ctx context.Context, organizationID string, req supplier.UpdateSupplierRequest) (supplier.SupplierResponse, error) {
	if err := req.Validate(); err != nil {
		return supplier.SupplierResponse{}, err
	}

	if err := s.supplierRepo.Update(ctx, req, organizationID); err != nil {
		return supplier.SupplierResponse{}, err
	}

	return s.GetByID(ctx, req.ID, organizationID)
}

func (s *SupplierServiceImpl) Delete(ctx context.Context, id string, organizationID string) error {
	count, err := s.supplierRepo.CountContractors(ctx, id, organizationID)
	if err != nil {
		return err
	}
	if count > 0 {
		return supplier.ErrSupplierHasContractors
	}

	return s.supplierRepo.Delete(ctx, id, organizationID)
}
