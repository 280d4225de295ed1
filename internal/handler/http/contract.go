package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contract"
	"github.com/siyanda-labs/contractor-backend-go/internal/handler/http/response"
)

type ContractHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Sign(w http.ResponseWriter, r *http.Request)
	Terminate(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	CreateEngagement(w http.ResponseWriter, r *http.Request)
	ListEngagements(w http.ResponseWriter, r *http.Request)
	GetEngagement(w http.ResponseWriter, r *http.Request)
	DeactivateEngagement(w http.ResponseWriter, r *http.Request)
	DeleteEngagement(w http.ResponseWriter, r *http.Request)
}

type ContractHandlerImpl struct {
	contractService contract.ContractService
}

func NewContractHandler(contractService contract.ContractService) ContractHandler {
	return &ContractHandlerImpl{contractService: contractService}
}

// List implements ContractHandler.
func (c *ContractHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var contracts []contract.ContractResponse
	if supplierID := r.URL.Query().Get("supplier_id"); supplierID != "" {
		contracts, err = c.contractService.ListBySupplier(r.Context(), supplierID, organizationID)
	} else {
		contracts, err = c.contractService.List(r.Context(), organizationID)
	}
	if err != nil {
		slog.Error("List contracts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, contracts)
}

// Create implements ContractHandler.
func (c *ContractHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq contract.CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create contract decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := c.contractService.Create(r.Context(), organizationID, createReq)
	if err != nil {
		slog.Error("Create contract service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Contract created successfully", created)
}

// GetByID implements ContractHandler.
func (c *ContractHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := c.contractService.GetByID(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements ContractHandler.
func (c *ContractHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq contract.UpdateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update contract decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := c.contractService.Update(r.Context(), organizationID, updateReq)
	if err != nil {
		slog.Error("Update contract service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contract updated successfully", updated)
}

// Sign implements ContractHandler.
func (c *ContractHandlerImpl) Sign(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	userID, err := claimString(r, "user_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	signed, err := c.contractService.Sign(r.Context(), chi.URLParam(r, "id"), organizationID, userID)
	if err != nil {
		slog.Error("Sign contract service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contract signed successfully", signed)
}

// Terminate implements ContractHandler.
func (c *ContractHandlerImpl) Terminate(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var terminateReq contract.TerminateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&terminateReq); err != nil {
		slog.Error("Terminate contract decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	terminated, err := c.contractService.Terminate(r.Context(), chi.URLParam(r, "id"), organizationID, terminateReq)
	if err != nil {
		slog.Error("Terminate contract service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contract terminated successfully", terminated)
}

// Delete implements ContractHandler.
func (c *ContractHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := c.contractService.Delete(r.Context(), chi.URLParam(r, "id"), organizationID); err != nil {
		slog.Error("Delete contract service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contract deleted successfully", nil)
}

// CreateEngagement implements ContractHandler.
func (c *ContractHandlerImpl) CreateEngagement(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq contract.CreateEngagementRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create engagement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.ContractID = chi.URLParam(r, "id")

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := c.contractService.CreateEngagement(r.Context(), organizationID, createReq)
	if err != nil {
		slog.Error("Create engagement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Engagement created successfully", created)
}

// ListEngagements implements ContractHandler.
func (c *ContractHandlerImpl) ListEngagements(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	engagements, err := c.contractService.ListEngagements(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		slog.Error("List engagements service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, engagements)
}

// GetEngagement implements ContractHandler.
func (c *ContractHandlerImpl) GetEngagement(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := c.contractService.GetEngagement(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// DeactivateEngagement implements ContractHandler.
func (c *ContractHandlerImpl) DeactivateEngagement(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	deactivated, err := c.contractService.DeactivateEngagement(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		slog.Error("Deactivate engagement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Engagement deactivated successfully", deactivated)
}

// DeleteEngagement implements ContractHandler.
func (c *ContractHandlerImpl) DeleteEngagement(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := c.contractService.DeleteEngagement(r.Context(), chi.URLParam(r, "id"), organizationID); err != nil {
		slog.Error("Delete engagement service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Engagement deleted successfully", nil)
}
