package timesheet

import "context"

type TimesheetService interface {
	Create(ctx context.Context, organizationID string, req CreateTimesheetRequest) (TimesheetResponse, error)
	GetByID(ctx context.Context, id string, organizationID string) (TimesheetResponse, error)
	List(ctx context.Context, organizationID string, filter ListFilter) ([]TimesheetResponse, error)
	Update(ctx context.Context, organizationID string, req UpdateTimesheetRequest) (TimesheetResponse, error)
	Submit(ctx context.Context, id string, organizationID string) (TimesheetResponse, error)
	Approve(ctx context.Context, id string, organizationID string, approverID string) (TimesheetResponse, error)
	Reject(ctx context.Context, id string, organizationID string, req RejectTimesheetRequest) (TimesheetResponse, error)
	Delete(ctx context.Context, id string, organizationID string) error
}
