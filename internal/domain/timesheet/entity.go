package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type TimesheetStatus string

const (
	TimesheetStatusDraft     TimesheetStatus = "draft"
	TimesheetStatusSubmitted TimesheetStatus = "submitted"
	TimesheetStatusApproved  TimesheetStatus = "approved"
	TimesheetStatusRejected  TimesheetStatus = "rejected"
)

type Entry struct {
	ID          string
	TimesheetID string
	WorkDate    time.Time
	Hours       decimal.Decimal
	Description *string
}

type Timesheet struct {
	ID              string
	OrganizationID  string
	ContractorID    string
	ProjectID       *string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	Entries         []Entry
	TotalHours      decimal.Decimal
	Status          TimesheetStatus
	SubmittedAt     *time.Time
	ApprovedAt      *time.Time
	ApprovedBy      *string
	RejectionReason *string
	InvoiceID       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	ContractorName *string
	ProjectName    *string
}

// ComputeTotalHours sums entry hours. Timesheet totals are always derived
// from entries, never stored independently.
func ComputeTotalHours(entries []Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Hours)
	}
	return total
}

// EntriesWithinPeriod checks that every entry date falls inside
// [periodStart, periodEnd].
func EntriesWithinPeriod(entries []Entry, periodStart, periodEnd time.Time) bool {
	for _, e := range entries {
		if e.WorkDate.Before(periodStart) || e.WorkDate.After(periodEnd) {
			return false
		}
	}
	return true
}
