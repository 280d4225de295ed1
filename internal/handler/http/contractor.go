package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contractor"
	"github.com/siyanda-labs/contractor-backend-go/internal/handler/http/response"
)

type ContractorHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ContractorHandlerImpl struct {
	contractorService contractor.ContractorService
}

func NewContractorHandler(contractorService contractor.ContractorService) ContractorHandler {
	return &ContractorHandlerImpl{contractorService: contractorService}
}

// List implements ContractorHandler. An optional supplier_id query
// parameter narrows the listing to one supplier.
func (c *ContractorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var contractors []contractor.ContractorResponse
	if supplierID := r.URL.Query().Get("supplier_id"); supplierID != "" {
		contractors, err = c.contractorService.ListBySupplier(r.Context(), supplierID, organizationID)
	} else {
		contractors, err = c.contractorService.List(r.Context(), organizationID)
	}
	if err != nil {
		slog.Error("List contractors service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, contractors)
}

// Create implements ContractorHandler.
func (c *ContractorHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq contractor.CreateContractorRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create contractor decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := c.contractorService.Create(r.Context(), organizationID, createReq)
	if err != nil {
		slog.Error("Create contractor service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contractor created successfully", created)
}

// GetByID implements ContractorHandler.
func (c *ContractorHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := c.contractorService.GetByID(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements ContractorHandler.
func (c *ContractorHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq contractor.UpdateContractorRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update contractor decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := c.contractorService.Update(r.Context(), organizationID, updateReq)
	if err != nil {
		slog.Error("Update contractor service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contractor updated successfully", updated)
}

// Delete implements ContractorHandler.
func (c *ContractorHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := c.contractorService.Delete(r.Context(), chi.URLParam(r, "id"), organizationID); err != nil {
		slog.Error("Delete contractor service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contractor deleted successfully", nil)
}
