package invoice

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contract"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contractor"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/invoice"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/timesheet"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"
	"github.com/siyanda-labs/contractor-backend-go/internal/repository/postgresql"
)

const defaultRejectionReason = "No reason provided"

type InvoiceServiceImpl struct {
	db            *database.DB
	invoiceRepo   invoice.InvoiceRepository
	timesheetRepo timesheet.TimesheetRepository
	builder       *builder
}

func NewInvoiceService(
	db *database.DB,
	invoiceRepo invoice.InvoiceRepository,
	timesheetRepo timesheet.TimesheetRepository,
	contractorRepo contractor.ContractorRepository,
	engagementRepo contract.EngagementRepository,
	sequenceRepo postgresql.SequenceRepository,
	taxRate decimal.Decimal,
) invoice.InvoiceService {
	return &InvoiceServiceImpl{
		db:            db,
		invoiceRepo:   invoiceRepo,
		timesheetRepo: timesheetRepo,
		builder: &builder{
			timesheetRepo:  timesheetRepo,
			contractorRepo: contractorRepo,
			engagementRepo: engagementRepo,
			sequenceRepo:   sequenceRepo,
			taxRate:        taxRate,
		},
	}
}

func (s *InvoiceServiceImpl) BuildFromTimesheets(ctx context.Context, organizationID string, req invoice.BuildInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	var created invoice.Invoice
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		draft, err := s.builder.buildFromTimesheets(txCtx, organizationID, req.TimesheetIDs)
		if err != nil {
			return err
		}

		created, err = s.invoiceRepo.Create(txCtx, draft)
		if err != nil {
			return err
		}

		return s.timesheetRepo.LinkInvoice(txCtx, req.TimesheetIDs, organizationID, created.ID)
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	created.TimesheetIDs = req.TimesheetIDs
	return invoice.ToResponse(created), nil
}

func (s *InvoiceServiceImpl) GetByID(ctx context.Context, id string, organizationID string) (invoice.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	return invoice.ToResponse(inv), nil
}

func (s *InvoiceServiceImpl) List(ctx context.Context, organizationID string, filter invoice.ListFilter) ([]invoice.InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.List(ctx, organizationID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]invoice.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, invoice.ToResponse(inv))
	}
	return responses, nil
}

func (s *InvoiceServiceImpl) Update(ctx context.Context, organizationID string, req invoice.UpdateInvoiceRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	items := make([]invoice.LineItem, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		items = append(items, invoice.LineItem{
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Amount:      li.Quantity.Mul(li.UnitPrice).Round(2),
		})
	}
	subtotal, taxAmount, totalAmount := invoice.Totals(items, s.builder.taxRate)

	// Replacing line items touches the invoice row and the line item
	// table; both land or neither does.
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		ok, err := s.invoiceRepo.ReplaceLineItems(txCtx, req.ID, organizationID, items, subtotal, taxAmount, totalAmount)
		if err != nil {
			return err
		}
		if !ok {
			return s.transitionError(txCtx, req.ID, organizationID, invoice.ErrInvoiceNotDraft)
		}
		return nil
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return s.GetByID(ctx, req.ID, organizationID)
}

func (s *InvoiceServiceImpl) Submit(ctx context.Context, id string, organizationID string) (invoice.InvoiceResponse, error) {
	inv, err := s.invoiceRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if len(inv.LineItems) == 0 {
		return invoice.InvoiceResponse{}, invoice.ErrInvoiceNoLineItems
	}

	ok, err := s.invoiceRepo.Submit(ctx, id, organizationID, time.Now())
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if !ok {
		return invoice.InvoiceResponse{}, s.transitionError(ctx, id, organizationID, invoice.ErrInvoiceNotDraft)
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *InvoiceServiceImpl) Approve(ctx context.Context, id string, organizationID string, approverID string) (invoice.InvoiceResponse, error) {
	ok, err := s.invoiceRepo.Approve(ctx, id, organizationID, approverID, time.Now())
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if !ok {
		return invoice.InvoiceResponse{}, s.transitionError(ctx, id, organizationID, invoice.ErrInvoiceNotSubmitted)
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *InvoiceServiceImpl) Reject(ctx context.Context, id string, organizationID string, req invoice.RejectInvoiceRequest) (invoice.InvoiceResponse, error) {
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = defaultRejectionReason
	}

	ok, err := s.invoiceRepo.Reject(ctx, id, organizationID, reason)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if !ok {
		return invoice.InvoiceResponse{}, s.transitionError(ctx, id, organizationID, invoice.ErrInvoiceNotSubmitted)
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *InvoiceServiceImpl) MarkPaid(ctx context.Context, id string, organizationID string, req invoice.MarkPaidRequest) (invoice.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return invoice.InvoiceResponse{}, err
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		if t, ok := validator.IsValidDateTime(*req.PaidAt); ok {
			paidAt = t
		}
	}

	ok, err := s.invoiceRepo.MarkPaid(ctx, id, organizationID, req.PaidAmount, req.Reference, req.Method, paidAt)
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if !ok {
		return invoice.InvoiceResponse{}, s.transitionError(ctx, id, organizationID, invoice.ErrInvoiceNotApproved)
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *InvoiceServiceImpl) Cancel(ctx context.Context, id string, organizationID string) (invoice.InvoiceResponse, error) {
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		ok, err := s.invoiceRepo.Cancel(txCtx, id, organizationID)
		if err != nil {
			return err
		}
		if !ok {
			return s.transitionError(txCtx, id, organizationID, invoice.ErrInvoiceAlreadyProcessed)
		}

		// Cancelled invoices release their timesheets for re-invoicing.
		return s.timesheetRepo.UnlinkInvoice(txCtx, id, organizationID)
	})
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *InvoiceServiceImpl) Void(ctx context.Context, id string, organizationID string, req invoice.VoidInvoiceRequest) (invoice.InvoiceResponse, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return invoice.InvoiceResponse{}, invoice.ErrVoidReasonRequired
	}

	ok, err := s.invoiceRepo.Void(ctx, id, organizationID, req.Reason, time.Now())
	if err != nil {
		return invoice.InvoiceResponse{}, err
	}
	if !ok {
		return invoice.InvoiceResponse{}, s.transitionError(ctx, id, organizationID, invoice.ErrInvoiceNotApproved)
	}

	return s.GetByID(ctx, id, organizationID)
}

func (s *InvoiceServiceImpl) Delete(ctx context.Context, id string, organizationID string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.timesheetRepo.UnlinkInvoice(txCtx, id, organizationID); err != nil {
			return err
		}

		ok, err := s.invoiceRepo.Delete(txCtx, id, organizationID)
		if err != nil {
			return err
		}
		if !ok {
			return s.transitionError(txCtx, id, organizationID, invoice.ErrInvoiceNotDeletable)
		}

		return nil
	})
}

// transitionError refines a failed compare-and-swap into the most
// specific sentinel: missing row, paid immutability, or the fallback
// the caller expected.
func (s *InvoiceServiceImpl) transitionError(ctx context.Context, id, organizationID string, fallback error) error {
	status, err := s.invoiceRepo.GetStatus(ctx, id, organizationID)
	if err != nil {
		return err
	}
	if status == invoice.InvoiceStatusPaid {
		return invoice.ErrInvoicePaidImmutable
	}
	return fallback
}
