package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrUsernameExists       = errors.New("organization username already taken")
)
