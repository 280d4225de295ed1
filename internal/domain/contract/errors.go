package contract

import "errors"

var (
	ErrContractNotFound        = errors.New("contract not found")
	ErrContractNumberExists    = errors.New("contract with this number already exists")
	ErrContractNotDraft        = errors.New("contract is not in draft status")
	ErrContractNotActive       = errors.New("contract is not active")
	ErrContractAlreadyTerminal = errors.New("contract is already terminated or expired")
	ErrContractHasEngagements  = errors.New("contract still has engagements and cannot be deleted")
	ErrContractDatesInvalid    = errors.New("contract end date must be after start date")

	ErrEngagementNotFound      = errors.New("engagement not found")
	ErrEngagementOverlap       = errors.New("contractor already has an active engagement in this window")
	ErrEngagementDatesInvalid  = errors.New("engagement end date must be after start date")
	ErrEngagementNotActive     = errors.New("engagement is not active")
	ErrEngagementWrongContract = errors.New("engagement does not belong to this contract")
)
