package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractStatusDraft      ContractStatus = "draft"
	ContractStatusActive     ContractStatus = "active"
	ContractStatusTerminated ContractStatus = "terminated"
	ContractStatusExpired    ContractStatus = "expired"
)

// IsTerminal reports whether no further transitions are allowed.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractStatusTerminated || s == ContractStatusExpired
}

type SupplierContract struct {
	ID                string
	OrganizationID    string
	SupplierID        string
	ContractNumber    string
	Title             *string
	StartDate         time.Time
	EndDate           *time.Time
	Status            ContractStatus
	SignedAt          *time.Time
	SignedBy          *string
	TerminatedAt      *time.Time
	TerminationReason *string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	SupplierName    *string
	EngagementCount *int64
}

type RateType string

const (
	RateTypeHourly RateType = "hourly"
	RateTypeDaily  RateType = "daily"
	RateTypeFixed  RateType = "fixed"
)

func IsValidRateType(s string) bool {
	switch RateType(s) {
	case RateTypeHourly, RateTypeDaily, RateTypeFixed:
		return true
	}
	return false
}

// Engagement is a contractor's assignment under an active contract.
// Exactly one active engagement per contractor drives invoicing.
type Engagement struct {
	ID             string
	OrganizationID string
	ContractID     string
	ContractorID   string
	RoleTitle      string
	Rate           decimal.Decimal
	RateType       RateType
	Currency       string
	StartDate      time.Time
	EndDate        *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	ContractorName *string
}
