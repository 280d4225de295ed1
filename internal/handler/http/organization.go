package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/organization"
	"github.com/siyanda-labs/contractor-backend-go/internal/handler/http/response"
)

type OrganizationHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &OrganizationHandlerImpl{organizationService: organizationService}
}

// Get implements OrganizationHandler.
func (o *OrganizationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	org, err := o.organizationService.Get(r.Context(), organizationID)
	if err != nil {
		slog.Error("Get organization service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, org)
}

// Update implements OrganizationHandler.
func (o *OrganizationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq organization.UpdateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update organization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	org, err := o.organizationService.Update(r.Context(), organizationID, updateReq)
	if err != nil {
		slog.Error("Update organization service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Organization updated successfully", org)
}
