package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/supplier"
	"github.com/siyanda-labs/contractor-backend-go/internal/handler/http/response"
)

type SupplierHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type SupplierHandlerImpl struct {
	supplierService supplier.SupplierService
}

func NewSupplierHandler(supplierService supplier.SupplierService) SupplierHandler {
	return &SupplierHandlerImpl{supplierService: supplierService}
}

// List implements SupplierHandler.
func (s *SupplierHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	suppliers, err := s.supplierService.List(r.Context(), organizationID)
	if err != nil {
		slog.Error("List suppliers service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, suppliers)
}

// Create implements SupplierHandler.
func (s *SupplierHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq supplier.CreateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create supplier decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := s.supplierService.Create(r.Context(), organizationID, createReq)
	if err != nil {
		slog.Error("Create supplier service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Supplier created successfully", created)
}

// GetByID implements SupplierHandler.
func (s *SupplierHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := s.supplierService.GetByID(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements SupplierHandler.
func (s *SupplierHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq supplier.UpdateSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update supplier decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := s.supplierService.Update(r.Context(), organizationID, updateReq)
	if err != nil {
		slog.Error("Update supplier service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Supplier updated successfully", updated)
}

// Delete implements SupplierHandler.
func (s *SupplierHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := s.supplierService.Delete(r.Context(), chi.URLParam(r, "id"), organizationID); err != nil {
		slog.Error("Delete supplier service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Supplier deleted successfully", nil)
}
