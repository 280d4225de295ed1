package withholding

import "errors"

var (
	ErrUnsupportedWithholdingType = errors.New("unsupported withholding type")

	ErrClassificationNotFound        = errors.New("tax classification not found")
	ErrClassificationOverlap         = errors.New("tax classification window overlaps an existing one")
	ErrClassificationWrongContractor = errors.New("tax classification does not belong to this contractor")
	ErrClassificationNotValid        = errors.New("tax classification does not cover the requested period")

	ErrInstructionNotFound       = errors.New("withholding instruction not found")
	ErrInstructionExists         = errors.New("withholding instruction already exists for this contractor, period, and type")
	ErrInstructionNotPending     = errors.New("withholding instruction is not pending")
	ErrInstructionNotInProgress  = errors.New("withholding instruction is not in progress")
	ErrInstructionNotFailed      = errors.New("withholding instruction is not in failed status")
	ErrInstructionSynced         = errors.New("synced withholding instructions are immutable")
	ErrExternalReferenceRequired = errors.New("external reference is required to mark an instruction synced")
)
