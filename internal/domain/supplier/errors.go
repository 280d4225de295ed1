package supplier

import "errors"

var (
	ErrSupplierNotFound       = errors.New("supplier not found")
	ErrSupplierHasContractors = errors.New("supplier still has contractors and cannot be deleted")
)
