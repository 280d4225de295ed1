package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/withholding"
	"github.com/siyanda-labs/contractor-backend-go/internal/handler/http/response"
)

type WithholdingHandler interface {
	CreateClassification(w http.ResponseWriter, r *http.Request)
	GetClassification(w http.ResponseWriter, r *http.Request)
	ListClassifications(w http.ResponseWriter, r *http.Request)
	DeleteClassification(w http.ResponseWriter, r *http.Request)

	CreateInstruction(w http.ResponseWriter, r *http.Request)
	GetInstruction(w http.ResponseWriter, r *http.Request)
	ListInstructions(w http.ResponseWriter, r *http.Request)
	StartSync(w http.ResponseWriter, r *http.Request)
	CompleteSync(w http.ResponseWriter, r *http.Request)
	FailSync(w http.ResponseWriter, r *http.Request)
	RetrySync(w http.ResponseWriter, r *http.Request)
	DeleteInstruction(w http.ResponseWriter, r *http.Request)
}

type WithholdingHandlerImpl struct {
	withholdingService withholding.WithholdingService
}

func NewWithholdingHandler(withholdingService withholding.WithholdingService) WithholdingHandler {
	return &WithholdingHandlerImpl{withholdingService: withholdingService}
}

// CreateClassification implements WithholdingHandler.
func (h *WithholdingHandlerImpl) CreateClassification(w http.ResponseWriter, r *http.Request) {
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

	var createReq withholding.CreateClassificationRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create classification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.withholdingService.CreateClassification(r.Context(), organizationID, userID, createReq)
	if err != nil {
		slog.Error("Create classification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tax classification created successfully", created)
}

// GetClassification implements WithholdingHandler.
func (h *WithholdingHandlerImpl) GetClassification(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := h.withholdingService.GetClassification(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListClassifications implements WithholdingHandler. Listings are
// always scoped to one contractor.
func (h *WithholdingHandlerImpl) ListClassifications(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	contractorID := r.URL.Query().Get("contractor_id")
	if contractorID == "" {
		response.BadRequest(w, "contractor_id query parameter is required", nil)
		return
	}

	classifications, err := h.withholdingService.ListClassifications(r.Context(), contractorID, organizationID)
	if err != nil {
		slog.Error("List classifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, classifications)
}

// DeleteClassification implements WithholdingHandler.
func (h *WithholdingHandlerImpl) DeleteClassification(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.withholdingService.DeleteClassification(r.Context(), chi.URLParam(r, "id"), organizationID); err != nil {
		slog.Error("Delete classification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tax classification deleted successfully", nil)
}

// CreateInstruction implements WithholdingHandler.
func (h *WithholdingHandlerImpl) CreateInstruction(w http.ResponseWriter, r *http.Request) {
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

	var createReq withholding.CreateInstructionRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create instruction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.withholdingService.CreateInstruction(r.Context(), organizationID, userID, createReq)
	if err != nil {
		slog.Error("Create instruction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Withholding instruction created successfully", created)
}

// GetInstruction implements WithholdingHandler.
func (h *WithholdingHandlerImpl) GetInstruction(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := h.withholdingService.GetInstruction(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

func instructionListFilter(r *http.Request) withholding.InstructionListFilter {
	var filter withholding.InstructionListFilter
	if contractorID := r.URL.Query().Get("contractor_id"); contractorID != "" {
		filter.ContractorID = &contractorID
	}
	if wtype := r.URL.Query().Get("withholding_type"); wtype != "" {
		t := withholding.WithholdingType(wtype)
		filter.WithholdingType = &t
	}
	if syncStatus := r.URL.Query().Get("sync_status"); syncStatus != "" {
		s := withholding.SyncStatus(syncStatus)
		filter.SyncStatus = &s
	}
	if taxYear := r.URL.Query().Get("tax_year"); taxYear != "" {
		if year, err := strconv.Atoi(taxYear); err == nil {
			filter.TaxYear = &year
		}
	}
	return filter
}

// ListInstructions implements WithholdingHandler.
func (h *WithholdingHandlerImpl) ListInstructions(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	instructions, err := h.withholdingService.ListInstructions(r.Context(), organizationID, instructionListFilter(r))
	if err != nil {
		slog.Error("List instructions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, instructions)
}

// StartSync implements WithholdingHandler. It claims the instruction
// for syncing and returns the payload destined for the tax authority
// adapter.
func (h *WithholdingHandlerImpl) StartSync(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payload, err := h.withholdingService.StartSync(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		slog.Error("Start sync service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Sync started", payload)
}

// CompleteSync implements WithholdingHandler.
func (h *WithholdingHandlerImpl) CompleteSync(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var syncedReq withholding.MarkSyncedRequest
	if err := json.NewDecoder(r.Body).Decode(&syncedReq); err != nil {
		slog.Error("Complete sync decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	synced, err := h.withholdingService.CompleteSync(r.Context(), chi.URLParam(r, "id"), organizationID, syncedReq)
	if err != nil {
		slog.Error("Complete sync service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Instruction synced", synced)
}

// FailSync implements WithholdingHandler.
func (h *WithholdingHandlerImpl) FailSync(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var failedReq withholding.MarkFailedRequest
	if err := json.NewDecoder(r.Body).Decode(&failedReq); err != nil {
		slog.Error("Fail sync decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	failed, err := h.withholdingService.FailSync(r.Context(), chi.URLParam(r, "id"), organizationID, failedReq)
	if err != nil {
		slog.Error("Fail sync service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Instruction marked failed", failed)
}

// RetrySync implements WithholdingHandler.
func (h *WithholdingHandlerImpl) RetrySync(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	retried, err := h.withholdingService.RetrySync(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		slog.Error("Retry sync service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Instruction queued for retry", retried)
}

// DeleteInstruction implements WithholdingHandler.
func (h *WithholdingHandlerImpl) DeleteInstruction(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.withholdingService.DeleteInstruction(r.Context(), chi.URLParam(r, "id"), organizationID); err != nil {
		slog.Error("Delete instruction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Withholding instruction deleted successfully", nil)
}
