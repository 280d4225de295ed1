package withholding

import (
	"time"

	"github.com/shopspring/decimal"
)

type WithholdingType string

const (
	WithholdingTypePAYE WithholdingType = "paye"
	WithholdingTypeSDL  WithholdingType = "sdl"
	WithholdingTypeUIF  WithholdingType = "uif"
)

func IsValidWithholdingType(s string) bool {
	switch WithholdingType(s) {
	case WithholdingTypePAYE, WithholdingTypeSDL, WithholdingTypeUIF:
		return true
	}
	return false
}

type Classification string

const (
	ClassificationTrueIndependent Classification = "true_independent"
	ClassificationDeemedEmployee  Classification = "deemed_employee"
)

func IsValidClassification(s string) bool {
	switch Classification(s) {
	case ClassificationTrueIndependent, ClassificationDeemedEmployee:
		return true
	}
	return false
}

// TaxClassification records whether a contractor is treated as an
// independent or a deemed employee for withholding purposes. Validity
// windows for the same (contractor, engagement) pair must not overlap.
type TaxClassification struct {
	ID             string
	OrganizationID string
	ContractorID   string
	EngagementID   *string
	Classification Classification
	EffectiveFrom  time.Time
	EffectiveTo    *time.Time
	RiskScore      int
	AssessedBy     *string
	AssessedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CoversPeriod reports whether the classification window fully covers
// [periodStart, periodEnd].
func (c *TaxClassification) CoversPeriod(periodStart, periodEnd time.Time) bool {
	if periodStart.Before(c.EffectiveFrom) {
		return false
	}
	if c.EffectiveTo != nil && periodEnd.After(*c.EffectiveTo) {
		return false
	}
	return true
}

type SyncStatus string

const (
	SyncStatusPending    SyncStatus = "pending"
	SyncStatusInProgress SyncStatus = "in_progress"
	SyncStatusSynced     SyncStatus = "synced"
	SyncStatusFailed     SyncStatus = "failed"
)

// WithholdingInstruction is an auditable statutory deduction record.
// Amounts are immutable after creation; only sync bookkeeping changes.
type WithholdingInstruction struct {
	ID                string
	OrganizationID    string
	ContractorID      string
	TaxClassification string
	InstructionNumber string
	WithholdingType   WithholdingType
	TaxYear           int
	PeriodStart       time.Time
	PeriodEnd         time.Time
	GrossAmount       decimal.Decimal
	WithholdingAmount decimal.Decimal
	NetAmount         decimal.Decimal
	SyncStatus        SyncStatus
	RetryCount        int
	ExternalReference *string
	SyncError         *string
	SyncedAt          *time.Time
	CreatedBy         *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	ContractorName *string
}

// CanonicalPayload is the shape handed to the external HCM/payroll
// adapter when the instruction syncs.
type CanonicalPayload struct {
	PayloadID         string          `json:"payload_id"`
	InstructionNumber string          `json:"instruction_number"`
	ContractorID      string          `json:"contractor_id"`
	WithholdingType   string          `json:"withholding_type"`
	TaxYear           int             `json:"tax_year"`
	PeriodStart       string          `json:"period_start"`
	PeriodEnd         string          `json:"period_end"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
	NetAmount         decimal.Decimal `json:"net_amount"`
}
