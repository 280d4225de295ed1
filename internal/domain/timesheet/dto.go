package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"
)

type EntryRequest struct {
	WorkDate    string          `json:"work_date"`
	Hours       decimal.Decimal `json:"hours"`
	Description *string         `json:"description,omitempty"`
}

type CreateTimesheetRequest struct {
	ContractorID string         `json:"contractor_id"`
	ProjectID    *string        `json:"project_id,omitempty"`
	PeriodStart  string         `json:"period_start"`
	PeriodEnd    string         `json:"period_end"`
	Entries      []EntryRequest `json:"entries"`
}

func (r *CreateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ContractorID) {
		errs = append(errs, validator.ValidationError{Field: "contractor_id", Message: "contractor_id is required"})
	}

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period_start must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must be after period_start"})
	}

	errs = append(errs, validateEntries(r.Entries, start, end, startOK && endOK)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTimesheetRequest struct {
	ID          string         `json:"-"`
	ProjectID   *string        `json:"project_id,omitempty"`
	PeriodStart string         `json:"period_start"`
	PeriodEnd   string         `json:"period_end"`
	Entries     []EntryRequest `json:"entries"`
}

func (r *UpdateTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period_start must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must be after period_start"})
	}

	errs = append(errs, validateEntries(r.Entries, start, end, startOK && endOK)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateEntries(entries []EntryRequest, start, end time.Time, checkPeriod bool) validator.ValidationErrors {
	var errs validator.ValidationErrors

	for i, e := range entries {
		date, ok := validator.IsValidDate(e.WorkDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "entries[" + validator.Itoa(i) + "].work_date",
				Message: "work_date must be a valid date (YYYY-MM-DD)",
			})
			continue
		}
		if checkPeriod && (date.Before(start) || date.After(end)) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries[" + validator.Itoa(i) + "].work_date",
				Message: "work_date must fall within the timesheet period",
			})
		}
		if !e.Hours.IsPositive() {
			errs = append(errs, validator.ValidationError{
				Field:   "entries[" + validator.Itoa(i) + "].hours",
				Message: "hours must be greater than zero",
			})
		}
		if e.Hours.GreaterThan(decimal.NewFromInt(24)) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries[" + validator.Itoa(i) + "].hours",
				Message: "hours must not exceed 24",
			})
		}
	}

	return errs
}

type RejectTimesheetRequest struct {
	Reason string `json:"reason"`
}

type EntryResponse struct {
	ID          string          `json:"id"`
	WorkDate    time.Time       `json:"work_date"`
	Hours       decimal.Decimal `json:"hours"`
	Description *string         `json:"description,omitempty"`
}

type TimesheetResponse struct {
	ID              string          `json:"id"`
	ContractorID    string          `json:"contractor_id"`
	ContractorName  *string         `json:"contractor_name,omitempty"`
	ProjectID       *string         `json:"project_id,omitempty"`
	ProjectName     *string         `json:"project_name,omitempty"`
	PeriodStart     time.Time       `json:"period_start"`
	PeriodEnd       time.Time       `json:"period_end"`
	Entries         []EntryResponse `json:"entries"`
	TotalHours      decimal.Decimal `json:"total_hours"`
	Status          string          `json:"status"`
	SubmittedAt     *time.Time      `json:"submitted_at,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	InvoiceID       *string         `json:"invoice_id,omitempty"`
}

func ToResponse(ts Timesheet) TimesheetResponse {
	entries := make([]EntryResponse, 0, len(ts.Entries))
	for _, e := range ts.Entries {
		entries = append(entries, EntryResponse{
			ID:          e.ID,
			WorkDate:    e.WorkDate,
			Hours:       e.Hours,
			Description: e.Description,
		})
	}

	return TimesheetResponse{
		ID:              ts.ID,
		ContractorID:    ts.ContractorID,
		ContractorName:  ts.ContractorName,
		ProjectID:       ts.ProjectID,
		ProjectName:     ts.ProjectName,
		PeriodStart:     ts.PeriodStart,
		PeriodEnd:       ts.PeriodEnd,
		Entries:         entries,
		TotalHours:      ts.TotalHours,
		Status:          string(ts.Status),
		SubmittedAt:     ts.SubmittedAt,
		ApprovedAt:      ts.ApprovedAt,
		ApprovedBy:      ts.ApprovedBy,
		RejectionReason: ts.RejectionReason,
		InvoiceID:       ts.InvoiceID,
	}
}
