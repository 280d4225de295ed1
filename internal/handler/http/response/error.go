package response

import (
	"errors"
	"net/http"

	"github.com/siyanda-labs/contractor-backend-go/internal/domain/auth"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contract"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contractor"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/invoice"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/organization"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/project"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/supplier"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/timesheet"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/user"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/withholding"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered in this organization")
	case errors.Is(err, user.ErrOwnerAccessRequired),
		errors.Is(err, user.ErrApproverAccessRequired),
		errors.Is(err, user.ErrFinanceAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrUsernameExists):
		Conflict(w, "Organization username already taken")

	// Supplier and contractor domain errors
	case errors.Is(err, supplier.ErrSupplierNotFound):
		NotFound(w, "Supplier not found")
	case errors.Is(err, supplier.ErrSupplierHasContractors):
		Conflict(w, "Supplier still has contractors")
	case errors.Is(err, contractor.ErrContractorNotFound):
		NotFound(w, "Contractor not found")
	case errors.Is(err, contractor.ErrContractorHasTimesheets):
		Conflict(w, "Contractor still has timesheets")
	case errors.Is(err, contractor.ErrContractorHasEngagements):
		Conflict(w, "Contractor still has engagements")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectCodeExists):
		Conflict(w, "Project code already exists")

	// Contract domain errors
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrContractNumberExists):
		Conflict(w, "Contract number already exists")
	case errors.Is(err, contract.ErrContractNotDraft):
		BadRequest(w, "Contract is not in draft status", nil)
	case errors.Is(err, contract.ErrContractNotActive):
		BadRequest(w, "Contract is not active", nil)
	case errors.Is(err, contract.ErrContractAlreadyTerminal):
		BadRequest(w, "Contract is already terminated or expired", nil)
	case errors.Is(err, contract.ErrContractHasEngagements):
		Conflict(w, "Contract still has engagements")
	case errors.Is(err, contract.ErrContractDatesInvalid):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, contract.ErrEngagementNotFound):
		NotFound(w, "Engagement not found")
	case errors.Is(err, contract.ErrEngagementOverlap):
		Conflict(w, "Contractor already has an active engagement in this window")
	case errors.Is(err, contract.ErrEngagementDatesInvalid):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, contract.ErrEngagementNotActive):
		BadRequest(w, "Engagement is not active", nil)
	case errors.Is(err, contract.ErrEngagementWrongContract):
		BadRequest(w, "Engagement does not belong to this contract", nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrTimesheetNotFound):
		NotFound(w, "Timesheet not found")
	case errors.Is(err, timesheet.ErrTimesheetAlreadyProcessed):
		Conflict(w, "Timesheet already processed")
	case errors.Is(err, timesheet.ErrTimesheetNotDraft),
		errors.Is(err, timesheet.ErrTimesheetNotSubmitted),
		errors.Is(err, timesheet.ErrTimesheetEmpty),
		errors.Is(err, timesheet.ErrTimesheetNotDeletable),
		errors.Is(err, timesheet.ErrEntryOutsidePeriod),
		errors.Is(err, timesheet.ErrPeriodInvalid):
		BadRequest(w, err.Error(), nil)

	// Invoice domain errors
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, invoice.ErrInvoiceAlreadyProcessed):
		Conflict(w, "Invoice already processed")
	case errors.Is(err, invoice.ErrTimesheetsInvoiced):
		Conflict(w, "One or more timesheets are already invoiced")
	case errors.Is(err, invoice.ErrInvoiceNotDraft),
		errors.Is(err, invoice.ErrInvoiceNotSubmitted),
		errors.Is(err, invoice.ErrInvoiceNotApproved),
		errors.Is(err, invoice.ErrInvoiceNoLineItems),
		errors.Is(err, invoice.ErrInvoiceNotDeletable),
		errors.Is(err, invoice.ErrInvoicePaidImmutable),
		errors.Is(err, invoice.ErrVoidReasonRequired),
		errors.Is(err, invoice.ErrNoTimesheets),
		errors.Is(err, invoice.ErrTimesheetsNotApproved),
		errors.Is(err, invoice.ErrTimesheetsMixedParties),
		errors.Is(err, invoice.ErrNoActiveEngagement),
		errors.Is(err, invoice.ErrAmbiguousEngagement),
		errors.Is(err, invoice.ErrMixedCurrencies):
		BadRequest(w, err.Error(), nil)

	// Withholding domain errors
	case errors.Is(err, withholding.ErrClassificationNotFound):
		NotFound(w, "Tax classification not found")
	case errors.Is(err, withholding.ErrClassificationOverlap):
		Conflict(w, "Tax classification window overlaps an existing one")
	case errors.Is(err, withholding.ErrInstructionNotFound):
		NotFound(w, "Withholding instruction not found")
	case errors.Is(err, withholding.ErrInstructionExists):
		Conflict(w, "Withholding instruction already exists for this period")
	case errors.Is(err, withholding.ErrInstructionSynced):
		Conflict(w, "Synced withholding instructions are immutable")
	case errors.Is(err, withholding.ErrUnsupportedWithholdingType),
		errors.Is(err, withholding.ErrClassificationWrongContractor),
		errors.Is(err, withholding.ErrClassificationNotValid),
		errors.Is(err, withholding.ErrInstructionNotPending),
		errors.Is(err, withholding.ErrInstructionNotInProgress),
		errors.Is(err, withholding.ErrInstructionNotFailed),
		errors.Is(err, withholding.ErrExternalReferenceRequired):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
