package contractor

import "errors"

var (
	ErrContractorNotFound       = errors.New("contractor not found")
	ErrContractorHasTimesheets  = errors.New("contractor still has timesheets and cannot be deleted")
	ErrContractorHasEngagements = errors.New("contractor still has engagements and cannot be deleted")
)
