package withholding

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/validator"
)

type CreateClassificationRequest struct {
	ContractorID   string  `json:"contractor_id"`
	EngagementID   *string `json:"engagement_id,omitempty"`
	Classification string  `json:"classification"`
	EffectiveFrom  string  `json:"effective_from"`
	EffectiveTo    *string `json:"effective_to,omitempty"`
	RiskScore      int     `json:"risk_score"`
}

func (r *CreateClassificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ContractorID) {
		errs = append(errs, validator.ValidationError{Field: "contractor_id", Message: "contractor_id is required"})
	}
	if !IsValidClassification(r.Classification) {
		errs = append(errs, validator.ValidationError{Field: "classification", Message: "classification must be 'true_independent' or 'deemed_employee'"})
	}
	if r.RiskScore < 0 || r.RiskScore > 100 {
		errs = append(errs, validator.ValidationError{Field: "risk_score", Message: "risk_score must be between 0 and 100"})
	}

	from, ok := validator.IsValidDate(r.EffectiveFrom)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "effective_from must be a valid date (YYYY-MM-DD)"})
	}
	if r.EffectiveTo != nil {
		to, ok := validator.IsValidDate(*r.EffectiveTo)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "effective_to must be a valid date (YYYY-MM-DD)"})
		} else if !to.After(from) {
			errs = append(errs, validator.ValidationError{Field: "effective_to", Message: "effective_to must be after effective_from"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateInstructionRequest struct {
	ContractorID        string           `json:"contractor_id"`
	TaxClassificationID string           `json:"tax_classification_id"`
	WithholdingType     string           `json:"withholding_type"`
	GrossAmount         decimal.Decimal  `json:"gross_amount"`
	WithholdingAmount   *decimal.Decimal `json:"withholding_amount,omitempty"`
	PeriodStart         string           `json:"period_start"`
	PeriodEnd           string           `json:"period_end"`
}

func (r *CreateInstructionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ContractorID) {
		errs = append(errs, validator.ValidationError{Field: "contractor_id", Message: "contractor_id is required"})
	}
	if validator.IsEmpty(r.TaxClassificationID) {
		errs = append(errs, validator.ValidationError{Field: "tax_classification_id", Message: "tax_classification_id is required"})
	}
	if !IsValidWithholdingType(r.WithholdingType) {
		errs = append(errs, validator.ValidationError{Field: "withholding_type", Message: "withholding_type must be one of 'paye', 'sdl', 'uif'"})
	}
	if !r.GrossAmount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "gross_amount", Message: "gross_amount must be greater than zero"})
	}

	start, startOK := validator.IsValidDate(r.PeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "period_start must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "period_end must be after period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkSyncedRequest struct {
	ExternalReference string `json:"external_reference"`
}

type MarkFailedRequest struct {
	SyncError string `json:"sync_error"`
}

type ClassificationResponse struct {
	ID             string     `json:"id"`
	ContractorID   string     `json:"contractor_id"`
	EngagementID   *string    `json:"engagement_id,omitempty"`
	Classification string     `json:"classification"`
	EffectiveFrom  time.Time  `json:"effective_from"`
	EffectiveTo    *time.Time `json:"effective_to,omitempty"`
	RiskScore      int        `json:"risk_score"`
	AssessedBy     *string    `json:"assessed_by,omitempty"`
	AssessedAt     *time.Time `json:"assessed_at,omitempty"`
}

func ToClassificationResponse(c TaxClassification) ClassificationResponse {
	return ClassificationResponse{
		ID:             c.ID,
		ContractorID:   c.ContractorID,
		EngagementID:   c.EngagementID,
		Classification: string(c.Classification),
		EffectiveFrom:  c.EffectiveFrom,
		EffectiveTo:    c.EffectiveTo,
		RiskScore:      c.RiskScore,
		AssessedBy:     c.AssessedBy,
		AssessedAt:     c.AssessedAt,
	}
}

type InstructionResponse struct {
	ID                string          `json:"id"`
	ContractorID      string          `json:"contractor_id"`
	ContractorName    *string         `json:"contractor_name,omitempty"`
	TaxClassification string          `json:"tax_classification_id"`
	InstructionNumber string          `json:"instruction_number"`
	WithholdingType   string          `json:"withholding_type"`
	TaxYear           int             `json:"tax_year"`
	PeriodStart       time.Time       `json:"period_start"`
	PeriodEnd         time.Time       `json:"period_end"`
	GrossAmount       decimal.Decimal `json:"gross_amount"`
	WithholdingAmount decimal.Decimal `json:"withholding_amount"`
	NetAmount         decimal.Decimal `json:"net_amount"`
	SyncStatus        string          `json:"sync_status"`
	RetryCount        int             `json:"retry_count"`
	ExternalReference *string         `json:"external_reference,omitempty"`
	SyncError         *string         `json:"sync_error,omitempty"`
	SyncedAt          *time.Time      `json:"synced_at,omitempty"`
}

func ToInstructionResponse(instr WithholdingInstruction) InstructionResponse {
	return InstructionResponse{
		ID:                instr.ID,
		ContractorID:      instr.ContractorID,
		ContractorName:    instr.ContractorName,
		TaxClassification: instr.TaxClassification,
		InstructionNumber: instr.InstructionNumber,
		WithholdingType:   string(instr.WithholdingType),
		TaxYear:           instr.TaxYear,
		PeriodStart:       instr.PeriodStart,
		PeriodEnd:         instr.PeriodEnd,
		GrossAmount:       instr.GrossAmount,
		WithholdingAmount: instr.WithholdingAmount,
		NetAmount:         instr.NetAmount,
		SyncStatus:        string(instr.SyncStatus),
		RetryCount:        instr.RetryCount,
		ExternalReference: instr.ExternalReference,
		SyncError:         instr.SyncError,
		SyncedAt:          instr.SyncedAt,
	}
}
