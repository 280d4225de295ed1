package timesheet

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contractor"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/project"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/timesheet"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"
	"github.com/siyanda-labs/contractor-backend-go/internal/repository/postgresql"
)

const defaultRejectionReason = "No reason provided"

type TimesheetServiceImpl struct {
	db             *database.DB
	timesheetRepo  timesheet.TimesheetRepository
	contractorRepo contractor.ContractorRepository
	projectRepo    project.ProjectRepository
}

func NewTimesheetService(
	db *database.DB,
	timesheetRepo timesheet.TimesheetRepository,
	contractorRepo contractor.ContractorRepository,
	projectRepo project.ProjectRepository,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		db:             db,
		timesheetRepo:  timesheetRepo,
		contractorRepo: contractorRepo,
		projectRepo:    projectRepo,
	}
}

func (s *TimesheetServiceImpl) Create(ctx context.Context, organizationID string, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	if _, err := s.contractorRepo.GetByID(ctx, req.ContractorID, organizationID); err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if req.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, *req.ProjectID, organizationID); err != nil {
			return timesheet.TimesheetResponse{}, err
		}
	}

	periodStart, _ := validator.IsValidDate(req.PeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PeriodEnd)
	entries := toEntries(req.Entries)

	var created timesheet.Timesheet
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		created, err = s.timesheetRepo.Create(txCtx, timesheet.Timesheet{
			OrganizationID: organizationID,
			ContractorID:   req.ContractorID,
			ProjectID:      req.ProjectID,
			PeriodStart:    periodStart,
			PeriodEnd:      periodEnd,
			Entries:        entries,
			TotalHours:     timesheet.ComputeTotalHours(entries),
		})
		return err
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return timesheet.ToResponse(created), nil
}

func (s *TimesheetServiceImpl) GetByID(ctx context.Context, id string, organizationID string) (timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.ToResponse(ts), nil
}

func (s *TimesheetServiceImpl) List(ctx context.Context, organizationID string, filter timesheet.ListFilter) ([]timesheet.TimesheetResponse, error) {
	timesheets, err := s.timesheetRepo.List(ctx, organizationID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]timesheet.TimesheetResponse, 0, len(timesheets))
	for _, ts := range timesheets {
		responses = append(responses, timesheet.ToResponse(ts))
	}
	return responses, nil
}

func (s *TimesheetServiceImpl) Update(ctx context.Context, organizationID string, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	periodStart, _ := validator.IsValidDate(req.PeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PeriodEnd)
	entries := toEntries(req.Entries)

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		ok, err := s.timesheetRepo.ReplaceEntries(txCtx, req.ID, organizationID, periodStart, periodEnd, entries, timesheet.ComputeTotalHours(entries))
		if err != nil {
			return err
		}
		if !ok {
			return s.transitionError(txCtx, req.ID, organizationID, timesheet.ErrTimesheetNotDraft)
		}
		return nil
	})
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	return s.GetByID(ctx, req.ID, organizationID)
}

func (s *TimesheetServiceImpl) Submit(ctx context.Context, id string, organizationID string) (timesheet.TimesheetResponse, error) {
	ts, err := s.timesheetRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if len(ts.Entries) == 0 {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetEmpty
	}

	ok, err := s.timesheetRepo.Submit(ctx, id, organizationID, time.Now())
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !ok {
		return timesheet.TimesheetResponse{}, timesheet.ErrTimesheetNotDraft
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *TimesheetServiceImpl) Approve(ctx context.Context, id string, organizationID string, approverID string) (timesheet.TimesheetResponse, error) {
	ok, err := s.timesheetRepo.Approve(ctx, id, organizationID, approverID, time.Now())
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !ok {
		return timesheet.TimesheetResponse{}, s.transitionError(ctx, id, organizationID, timesheet.ErrTimesheetNotSubmitted)
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *TimesheetServiceImpl) Reject(ctx context.Context, id string, organizationID string, req timesheet.RejectTimesheetRequest) (timesheet.TimesheetResponse, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = defaultRejectionReason
	}

	ok, err := s.timesheetRepo.Reject(ctx, id, organizationID, reason)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	if !ok {
		return timesheet.TimesheetResponse{}, s.transitionError(ctx, id, organizationID, timesheet.ErrTimesheetNotSubmitted)
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *TimesheetServiceImpl) Delete(ctx context.Context, id string, organizationID string) error {
	ok, err := s.timesheetRepo.Delete(ctx, id, organizationID)
	if err != nil {
		return err
	}
	if !ok {
		return s.transitionError(ctx, id, organizationID, timesheet.ErrTimesheetNotDeletable)
	}
	return nil
}

// transitionError distinguishes a missing timesheet from a status that
// forbids the transition.
func (s *TimesheetServiceImpl) transitionError(ctx context.Context, id, organizationID string, fallback error) error {
	if _, err := s.timesheetRepo.GetByID(ctx, id, organizationID); err != nil {
		return err
	}
	return fallback
}

func toEntries(reqs []timesheet.EntryRequest) []timesheet.Entry {
	entries := make([]timesheet.Entry, 0, len(reqs))
	for _, e := range reqs {
		date, _ := validator.IsValidDate(e.WorkDate)
		entries = append(entries, timesheet.Entry{
			WorkDate:    date,
			Hours:       e.Hours,
			Description: e.Description,
		})
	}
	return entries
}
