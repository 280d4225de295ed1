package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/invoice"
	"github.com/siyanda-labs/contractor-backend-go/internal/handler/http/response"
)

type InvoiceHandler interface {
	Build(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Void(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandlerImpl struct {
	invoiceService invoice.InvoiceService
}

func NewInvoiceHandler(invoiceService invoice.InvoiceService) InvoiceHandler {
	return &InvoiceHandlerImpl{invoiceService: invoiceService}
}

func invoiceListFilter(r *http.Request) invoice.ListFilter {
	var filter invoice.ListFilter
	if status := r.URL.Query().Get("status"); status != "" {
		s := invoice.InvoiceStatus(status)
		filter.Status = &s
	}
	if supplierID := r.URL.Query().Get("supplier_id"); supplierID != "" {
		filter.SupplierID = &supplierID
	}
	return filter
}

// Build implements InvoiceHandler. It turns a batch of approved
// timesheets into a draft invoice.
func (i *InvoiceHandlerImpl) Build(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var buildReq invoice.BuildInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&buildReq); err != nil {
		slog.Error("Build invoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := buildReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	built, err := i.invoiceService.BuildFromTimesheets(r.Context(), organizationID, buildReq)
	if err != nil {
		slog.Error("Build invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invoice created successfully", built)
}

// List implements InvoiceHandler.
func (i *InvoiceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	invoices, err := i.invoiceService.List(r.Context(), organizationID, invoiceListFilter(r))
	if err != nil {
		slog.Error("List invoices service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, invoices)
}

// GetByID implements InvoiceHandler.
func (i *InvoiceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	found, err := i.invoiceService.GetByID(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// Update implements InvoiceHandler.
func (i *InvoiceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var updateReq invoice.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update invoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := i.invoiceService.Update(r.Context(), organizationID, updateReq)
	if err != nil {
		slog.Error("Update invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice updated successfully", updated)
}

// Submit implements InvoiceHandler.
func (i *InvoiceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	submitted, err := i.invoiceService.Submit(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		slog.Error("Submit invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice submitted successfully", submitted)
}

// Approve implements InvoiceHandler.
func (i *InvoiceHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
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

	approved, err := i.invoiceService.Approve(r.Context(), chi.URLParam(r, "id"), organizationID, userID)
	if err != nil {
		slog.Error("Approve invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice approved successfully", approved)
}

// Reject implements InvoiceHandler.
func (i *InvoiceHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var rejectReq invoice.RejectInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("Reject invoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	rejected, err := i.invoiceService.Reject(r.Context(), chi.URLParam(r, "id"), organizationID, rejectReq)
	if err != nil {
		slog.Error("Reject invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice rejected", rejected)
}

// MarkPaid implements InvoiceHandler.
func (i *InvoiceHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var paidReq invoice.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&paidReq); err != nil {
		slog.Error("Mark invoice paid decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := paidReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	paid, err := i.invoiceService.MarkPaid(r.Context(), chi.URLParam(r, "id"), organizationID, paidReq)
	if err != nil {
		slog.Error("Mark invoice paid service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice marked as paid", paid)
}

// Cancel implements InvoiceHandler.
func (i *InvoiceHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cancelled, err := i.invoiceService.Cancel(r.Context(), chi.URLParam(r, "id"), organizationID)
	if err != nil {
		slog.Error("Cancel invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice cancelled", cancelled)
}

// Void implements InvoiceHandler.
func (i *InvoiceHandlerImpl) Void(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var voidReq invoice.VoidInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&voidReq); err != nil {
		slog.Error("Void invoice decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	voided, err := i.invoiceService.Void(r.Context(), chi.URLParam(r, "id"), organizationID, voidReq)
	if err != nil {
		slog.Error("Void invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice voided", voided)
}

// Delete implements InvoiceHandler.
func (i *InvoiceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	organizationID, err := claimString(r, "organization_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := i.invoiceService.Delete(r.Context(), chi.URLParam(r, "id"), organizationID); err != nil {
		slog.Error("Delete invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invoice deleted successfully", nil)
}
