package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered in this organization")

	ErrOwnerAccessRequired    = errors.New("owner access required")
	ErrApproverAccessRequired = errors.New("timesheet approver access required")
	ErrFinanceAccessRequired  = errors.New("finance access required")
)
