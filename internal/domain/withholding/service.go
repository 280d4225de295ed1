package withholding

import "context"

type WithholdingService interface {
	CreateClassification(ctx context.Context, organizationID string, assessedBy string, req CreateClassificationRequest) (ClassificationResponse, error)
	GetClassification(ctx context.Context, id string, organizationID string) (ClassificationResponse, error)
	ListClassifications(ctx context.Context, contractorID string, organizationID string) ([]ClassificationResponse, error)
	DeleteClassification(ctx context.Context, id string, organizationID string) error

	CreateInstruction(ctx context.Context, organizationID string, createdBy string, req CreateInstructionRequest) (InstructionResponse, error)
	GetInstruction(ctx context.Context, id string, organizationID string) (InstructionResponse, error)
	ListInstructions(ctx context.Context, organizationID string, filter InstructionListFilter) ([]InstructionResponse, error)

	// StartSync moves a pending or failed instruction to in_progress and
	// returns the payload for the external adapter.
	StartSync(ctx context.Context, id string, organizationID string) (CanonicalPayload, error)
	CompleteSync(ctx context.Context, id string, organizationID string, req MarkSyncedRequest) (InstructionResponse, error)
	FailSync(ctx context.Context, id string, organizationID string, req MarkFailedRequest) (InstructionResponse, error)
	RetrySync(ctx context.Context, id string, organizationID string) (InstructionResponse, error)

	DeleteInstruction(ctx context.Context, id string, organizationID string) error
}
