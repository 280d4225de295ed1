package withholding

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contractor"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/withholding"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"
	"github.com/siyanda-labs/contractor-backend-go/internal/repository/postgresql"
)

type WithholdingServiceImpl struct {
	db                 *database.DB
	classificationRepo withholding.ClassificationRepository
	instructionRepo    withholding.InstructionRepository
	contractorRepo     contractor.ContractorRepository
	sequenceRepo       postgresql.SequenceRepository
	calculator         *Calculator
}

func NewWithholdingService(
	db *database.DB,
	classificationRepo withholding.ClassificationRepository,
	instructionRepo withholding.InstructionRepository,
	contractorRepo contractor.ContractorRepository,
	sequenceRepo postgresql.SequenceRepository,
	calculator *Calculator,
) withholding.WithholdingService {
	return &WithholdingServiceImpl{
		db:                 db,
		classificationRepo: classificationRepo,
		instructionRepo:    instructionRepo,
		contractorRepo:     contractorRepo,
		sequenceRepo:       sequenceRepo,
		calculator:         calculator,
	}
}

func (s *WithholdingServiceImpl) CreateClassification(ctx context.Context, organizationID string, assessedBy string, req withholding.CreateClassificationRequest) (withholding.ClassificationResponse, error) {
	if err := req.Validate(); err != nil {
		return withholding.ClassificationResponse{}, err
	}

	if _, err := s.contractorRepo.GetByID(ctx, req.ContractorID, organizationID); err != nil {
		return withholding.ClassificationResponse{}, err
	}

	effectiveFrom, _ := validator.IsValidDate(req.EffectiveFrom)
	var effectiveTo *time.Time
	if req.EffectiveTo != nil {
		d, _ := validator.IsValidDate(*req.EffectiveTo)
		effectiveTo = &d
	}

	overlap, err := s.classificationRepo.HasOverlap(ctx, req.ContractorID, req.EngagementID, organizationID, effectiveFrom, effectiveTo, nil)
	if err != nil {
		return withholding.ClassificationResponse{}, err
	}
	if overlap {
		return withholding.ClassificationResponse{}, withholding.ErrClassificationOverlap
	}

	now := time.Now()
	created, err := s.classificationRepo.Create(ctx, withholding.TaxClassification{
		OrganizationID: organizationID,
		ContractorID:   req.ContractorID,
		EngagementID:   req.EngagementID,
		Classification: withholding.Classification(req.Classification),
		EffectiveFrom:  effectiveFrom,
		EffectiveTo:    effectiveTo,
		RiskScore:      req.RiskScore,
		AssessedBy:     &assessedBy,
		AssessedAt:     &now,
	})
	if err != nil {
		return withholding.ClassificationResponse{}, err
	}

	return withholding.ToClassificationResponse(created), nil
}

func (s *WithholdingServiceImpl) GetClassification(ctx context.Context, id string, organizationID string) (withholding.ClassificationResponse, error) {
	c, err := s.classificationRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return withholding.ClassificationResponse{}, err
	}
	return withholding.ToClassificationResponse(c), nil
}

func (s *WithholdingServiceImpl) ListClassifications(ctx context.Context, contractorID string, organizationID string) ([]withholding.ClassificationResponse, error) {
	classifications, err := s.classificationRepo.GetByContractorID(ctx, contractorID, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]withholding.ClassificationResponse, 0, len(classifications))
	for _, c := range classifications {
		responses = append(responses, withholding.ToClassificationResponse(c))
	}
	return responses, nil
}

func (s *WithholdingServiceImpl) DeleteClassification(ctx context.Context, id string, organizationID string) error {
	return s.classificationRepo.Delete(ctx, id, organizationID)
}

func (s *WithholdingServiceImpl) CreateInstruction(ctx context.Context, organizationID string, createdBy string, req withholding.CreateInstructionRequest) (withholding.InstructionResponse, error) {
	if err := req.Validate(); err != nil {
		return withholding.InstructionResponse{}, err
	}

	if _, err := s.contractorRepo.GetByID(ctx, req.ContractorID, organizationID); err != nil {
		return withholding.InstructionResponse{}, err
	}

	classification, err := s.classificationRepo.GetByID(ctx, req.TaxClassificationID, organizationID)
	if err != nil {
		return withholding.InstructionResponse{}, err
	}
	if classification.ContractorID != req.ContractorID {
		return withholding.InstructionResponse{}, withholding.ErrClassificationWrongContractor
	}

	periodStart, _ := validator.IsValidDate(req.PeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PeriodEnd)
	if !classification.CoversPeriod(periodStart, periodEnd) {
		return withholding.InstructionResponse{}, withholding.ErrClassificationNotValid
	}

	wtype := withholding.WithholdingType(req.WithholdingType)

	exists, err := s.instructionRepo.ExistsForPeriod(ctx, req.ContractorID, organizationID, wtype, periodStart, periodEnd)
	if err != nil {
		return withholding.InstructionResponse{}, err
	}
	if exists {
		return withholding.InstructionResponse{}, withholding.ErrInstructionExists
	}

	// The calculator is authoritative: any caller-supplied withholding
	// amount is recomputed and overwritten.
	withholdingAmount, err := s.calculator.Compute(wtype, req.GrossAmount)
	if err != nil {
		return withholding.InstructionResponse{}, err
	}

	taxYear := periodEnd.Year()

	var created withholding.WithholdingInstruction
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		seq, err := s.sequenceRepo.Next(txCtx, organizationID, "withholding", taxYear)
		if err != nil {
			return err
		}

		created, err = s.instructionRepo.Create(txCtx, withholding.WithholdingInstruction{
			OrganizationID:    organizationID,
			ContractorID:      req.ContractorID,
			TaxClassification: req.TaxClassificationID,
			InstructionNumber: fmt.Sprintf("WH-%d-%06d", taxYear, seq),
			WithholdingType:   wtype,
			TaxYear:           taxYear,
			PeriodStart:       periodStart,
			PeriodEnd:         periodEnd,
			GrossAmount:       req.GrossAmount,
			WithholdingAmount: withholdingAmount,
			NetAmount:         req.GrossAmount.Sub(withholdingAmount),
			CreatedBy:         &createdBy,
		})
		return err
	})
	if err != nil {
		return withholding.InstructionResponse{}, err
	}

	return withholding.ToInstructionResponse(created), nil
}

func (s *WithholdingServiceImpl) GetInstruction(ctx context.Context, id string, organizationID string) (withholding.InstructionResponse, error) {
	instr, err := s.instructionRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return withholding.InstructionResponse{}, err
	}
	return withholding.ToInstructionResponse(instr), nil
}

func (s *WithholdingServiceImpl) ListInstructions(ctx context.Context, organizationID string, filter withholding.InstructionListFilter) ([]withholding.InstructionResponse, error) {
	instructions, err := s.instructionRepo.List(ctx, organizationID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]withholding.InstructionResponse, 0, len(instructions))
	for _, instr := range instructions {
		responses = append(responses, withholding.ToInstructionResponse(instr))
	}
	return responses, nil
}

func (s *WithholdingServiceImpl) StartSync(ctx context.Context, id string, organizationID string) (withholding.CanonicalPayload, error) {
	instr, err := s.instructionRepo.GetByID(ctx, id, organizationID)
	if err != nil {
		return withholding.CanonicalPayload{}, err
	}

	ok, err := s.instructionRepo.MarkInProgress(ctx, id, organizationID)
	if err != nil {
		return withholding.CanonicalPayload{}, err
	}
	if !ok {
		if instr.SyncStatus == withholding.SyncStatusSynced {
			return withholding.CanonicalPayload{}, withholding.ErrInstructionSynced
		}
		return withholding.CanonicalPayload{}, withholding.ErrInstructionNotPending
	}

	return withholding.CanonicalPayload{
		PayloadID:         uuid.NewString(),
		InstructionNumber: instr.InstructionNumber,
		ContractorID:      instr.ContractorID,
		WithholdingType:   string(instr.WithholdingType),
		TaxYear:           instr.TaxYear,
		PeriodStart:       instr.PeriodStart.Format("2006-01-02"),
		PeriodEnd:         instr.PeriodEnd.Format("2006-01-02"),
		GrossAmount:       instr.GrossAmount,
		WithholdingAmount: instr.WithholdingAmount,
		NetAmount:         instr.NetAmount,
	}, nil
}

func (s *WithholdingServiceImpl) CompleteSync(ctx context.Context, id string, organizationID string, req withholding.MarkSyncedRequest) (withholding.InstructionResponse, error) {
	if req.ExternalReference == "" {
		return withholding.InstructionResponse{}, withholding.ErrExternalReferenceRequired
	}

	ok, err := s.instructionRepo.MarkSynced(ctx, id, organizationID, req.ExternalReference, time.Now())
	if err != nil {
		return withholding.InstructionResponse{}, err
	}
	if !ok {
		return withholding.InstructionResponse{}, s.transitionError(ctx, id, organizationID, withholding.ErrInstructionNotInProgress)
	}

	return s.GetInstruction(ctx, id, organizationID)
}

func (s *WithholdingServiceImpl) FailSync(ctx context.Context, id string, organizationID string, req withholding.MarkFailedRequest) (withholding.InstructionResponse, error) {
	ok, err := s.instructionRepo.MarkFailed(ctx, id, organizationID, req.SyncError)
	if err != nil {
		return withholding.InstructionResponse{}, err
	}
	if !ok {
		return withholding.InstructionResponse{}, s.transitionError(ctx, id, organizationID, withholding.ErrInstructionNotInProgress)
	}

	return s.GetInstruction(ctx, id, organizationID)
}

func (s *WithholdingServiceImpl) RetrySync(ctx context.Context, id string, organizationID string) (withholding.InstructionResponse, error) {
	ok, err := s.instructionRepo.Retry(ctx, id, organizationID)
	if err != nil {
		return withholding.InstructionResponse{}, err
	}
	if !ok {
		return withholding.InstructionResponse{}, s.transitionError(ctx, id, organizationID, withholding.ErrInstructionNotFailed)
	}

	return s.GetInstruction(ctx, id, organizationID)
}

func (s *WithholdingServiceImpl) DeleteInstruction(ctx context.Context, id string, organizationID string) error {
	ok, err := s.instructionRepo.Delete(ctx, id, organizationID)
	if err != nil {
		return err
	}
	if !ok {
		if _, err := s.instructionRepo.GetByID(ctx, id, organizationID); err != nil {
			return err
		}
		return withholding.ErrInstructionSynced
	}
	return nil
}

// transitionError distinguishes a missing instruction from a sync
// status that forbids the transition.
func (s *WithholdingServiceImpl) transitionError(ctx context.Context, id, organizationID string, fallback error) error {
	if _, err := s.instructionRepo.GetByID(ctx, id, organizationID); err != nil {
		return err
	}
	return fallback
}
