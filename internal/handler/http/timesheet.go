package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/timesheet"
	"github.com/siyanda-labs/contractor-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &TimesheetHandlerImpl{timesheetService: timesheetService}
}

func timesheetListFilter(r *http.Request) timesheet.ListFilter {
	var filter timesheet.ListFilter
	if status := r.URL.Query().Get("status"); status != "" {
		s := timesheet.TimesheetStatus(status)
		filter.Status = &s
	}
	if contractorID := r.URL.Query().Get("contractor_id"); contractorID != "" {
		filter.ContractorID = &contractorID
	}
	if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}
	return filter
}

// List implements TimesheetHandler.
func (t *TimesheetHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	timesheets, err := t.timesheetService.List(r.Context(), organizationID, timesheetListFilter(r))
	if err != nil {
		slog.Error("List timesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, timesheets)
}

// Create implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq timesheet.CreateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create timesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := createReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := t.timesheetService.Create(r.Context(), organizationID, createReq)
	if err != nil {
		slog.Error("Create timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet created successfully", created)
}

// GetByID implements TimesheetHandler.
func (t *TimesheetHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := t.timesheetService.GetByID(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq timesheet.UpdateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update timesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := t.timesheetService.Update(r.Context(), organizationID, updateReq)
	if err != nil {
		slog.Error("Update timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet updated successfully", updated)
}

// Submit implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	submitted, err := t.timesheetService.Submit(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		slog.Error("Submit timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet submitted successfully", submitted)
}

// Approve implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
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

	approved, err := t.timesheetService.Approve(r.Context(), chi.URLParam(r, "id"), organizationID, userID)
	if err != nil {
		slog.Error("Approve timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet approved successfully", approved)
}

// Reject implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var rejectReq timesheet.RejectTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("Reject timesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rejected, err := t.timesheetService.Reject(r.Context(), chi.URLParam(r, "id"), organizationID, rejectReq)
	if err != nil {
		slog.Error("Reject timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet rejected", rejected)
}

// Delete implements TimesheetHandler.
func (t *TimesheetHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := t.timesheetService.Delete(r.Context(), chi.URLParam(r, "id"), organizationID); err != nil {
		slog.Error("Delete timesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet deleted successfully", nil)
}
