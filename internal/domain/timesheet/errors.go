package timesheet

import "errors"

var (
	ErrTimesheetNotFound         = errors.New("timesheet not found")
	ErrTimesheetNotDraft         = errors.New("timesheet is not in draft status")
	ErrTimesheetNotSubmitted     = errors.New("timesheet is not in submitted status")
	ErrTimesheetEmpty            = errors.New("timesheet has no entries")
	ErrTimesheetNotDeletable     = errors.New("only draft or rejected timesheets can be deleted")
	ErrTimesheetAlreadyProcessed = errors.New("timesheet has already been processed")
	ErrEntryOutsidePeriod        = errors.New("entry date falls outside the timesheet period")
	ErrPeriodInvalid             = errors.New("period end must be after period start")
)
