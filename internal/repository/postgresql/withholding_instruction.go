package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/withholding"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type instructionRepositoryImpl struct {
	db *database.DB
}

func NewInstructionRepository(db *database.DB) withholding.InstructionRepository {
	return &instructionRepositoryImpl{db: db}
}

const instructionColumns = `
	w.id, w.organization_id, w.contractor_id, w.tax_classification,
	w.instruction_number, w.withholding_type, w.tax_year, w.period_start,
	w.period_end, w.gross_amount, w.withholding_amount, w.net_amount,
	w.sync_status, w.retry_count, w.external_reference, w.sync_error,
	w.synced_at, w.created_by, w.created_at, w.updated_at
`

func scanInstruction(row pgx.Row) (withholding.WithholdingInstruction, error) {
	var instr withholding.WithholdingInstruction
	err := row.Scan(
		&instr.ID,
		&instr.OrganizationID,
		&instr.ContractorID,
		&instr.TaxClassification,
		&instr.InstructionNumber,
		&instr.WithholdingType,
		&instr.TaxYear,
		&instr.PeriodStart,
		&instr.PeriodEnd,
		&instr.GrossAmount,
		&instr.WithholdingAmount,
		&instr.NetAmount,
		&instr.SyncStatus,
		&instr.RetryCount,
		&instr.ExternalReference,
		&instr.SyncError,
		&instr.SyncedAt,
		&instr.CreatedBy,
		&instr.CreatedAt,
		&instr.UpdatedAt,
	)
	return instr, err
}

func (r *instructionRepositoryImpl) Create(ctx context.Context, instr withholding.WithholdingInstruction) (withholding.WithholdingInstruction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO withholding_instructions (id, organization_id, contractor_id, tax_classification, instruction_number, withholding_type, tax_year, period_start, period_end, gross_amount, withholding_amount, net_amount, sync_status, retry_count, created_by, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'pending', 0, $12, NOW(), NOW())
		RETURNING ` + strings.ReplaceAll(instructionColumns, "w.", "")

	result, err := scanInstruction(q.QueryRow(ctx, query,
		instr.OrganizationID,
		instr.ContractorID,
		instr.TaxClassification,
		instr.InstructionNumber,
		instr.WithholdingType,
		instr.TaxYear,
		instr.PeriodStart,
		instr.PeriodEnd,
		instr.GrossAmount,
		instr.WithholdingAmount,
		instr.NetAmount,
		instr.CreatedBy,
	))
	if err != nil {
		return withholding.WithholdingInstruction{}, fmt.Errorf("failed to create withholding instruction: %w", err)
	}

	return result, nil
}

func (r *instructionRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (withholding.WithholdingInstruction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + instructionColumns + `, c.full_name
		FROM withholding_instructions w
		INNER JOIN contractors c ON w.contractor_id = c.id
		WHERE w.id = $1 AND w.organization_id = $2
	`

	var instr withholding.WithholdingInstruction
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&instr.ID,
		&instr.OrganizationID,
		&instr.ContractorID,
		&instr.TaxClassification,
		&instr.InstructionNumber,
		&instr.WithholdingType,
		&instr.TaxYear,
		&instr.PeriodStart,
		&instr.PeriodEnd,
		&instr.GrossAmount,
		&instr.WithholdingAmount,
		&instr.NetAmount,
		&instr.SyncStatus,
		&instr.RetryCount,
		&instr.ExternalReference,
		&instr.SyncError,
		&instr.SyncedAt,
		&instr.CreatedBy,
		&instr.CreatedAt,
		&instr.UpdatedAt,
		&instr.ContractorName,
	)
	if err == pgx.ErrNoRows {
		return withholding.WithholdingInstruction{}, withholding.ErrInstructionNotFound
	}
	if err != nil {
		return withholding.WithholdingInstruction{}, fmt.Errorf("failed to get withholding instruction: %w", err)
	}

	return instr, nil
}

func (r *instructionRepositoryImpl) List(ctx context.Context, organizationID string, filter withholding.InstructionListFilter) ([]withholding.WithholdingInstruction, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"w.organization_id = $1"}
	args := []interface{}{organizationID}
	argPos := 2

	if filter.ContractorID != nil {
		conditions = append(conditions, fmt.Sprintf("w.contractor_id = $%d", argPos))
		args = append(args, *filter.ContractorID)
		argPos++
	}
	if filter.WithholdingType != nil {
		conditions = append(conditions, fmt.Sprintf("w.withholding_type = $%d", argPos))
		args = append(args, *filter.WithholdingType)
		argPos++
	}
	if filter.SyncStatus != nil {
		conditions = append(conditions, fmt.Sprintf("w.sync_status = $%d", argPos))
		args = append(args, *filter.SyncStatus)
		argPos++
	}
	if filter.TaxYear != nil {
		conditions = append(conditions, fmt.Sprintf("w.tax_year = $%d", argPos))
		args = append(args, *filter.TaxYear)
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT %s, c.full_name
		FROM withholding_instructions w
		INNER JOIN contractors c ON w.contractor_id = c.id
		WHERE %s
		ORDER BY w.created_at DESC
	`, instructionColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list withholding instructions: %w", err)
	}
	defer rows.Close()

	var instructions []withholding.WithholdingInstruction
	for rows.Next() {
		var instr withholding.WithholdingInstruction
		err := rows.Scan(
			&instr.ID,
			&instr.OrganizationID,
			&instr.ContractorID,
			&instr.TaxClassification,
			&instr.InstructionNumber,
			&instr.WithholdingType,
			&instr.TaxYear,
			&instr.PeriodStart,
			&instr.PeriodEnd,
			&instr.GrossAmount,
			&instr.WithholdingAmount,
			&instr.NetAmount,
			&instr.SyncStatus,
			&instr.RetryCount,
			&instr.ExternalReference,
			&instr.SyncError,
			&instr.SyncedAt,
			&instr.CreatedBy,
			&instr.CreatedAt,
			&instr.UpdatedAt,
			&instr.ContractorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan withholding instruction: %w", err)
		}
		instructions = append(instructions, instr)
	}

	return instructions, nil
}

func (r *instructionRepositoryImpl) ExistsForPeriod(ctx context.Context, contractorID string, organizationID string, wtype withholding.WithholdingType, periodStart, periodEnd time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM withholding_instructions
			WHERE contractor_id = $1
			  AND organization_id = $2
			  AND withholding_type = $3
			  AND period_start = $4
			  AND period_end = $5
		)
	`, contractorID, organizationID, wtype, periodStart, periodEnd).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check withholding instruction period: %w", err)
	}

	return exists, nil
}

func (r *instructionRepositoryImpl) MarkInProgress(ctx context.Context, id, organizationID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE withholding_instructions
		SET sync_status = 'in_progress', updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND sync_status IN ('pending', 'failed')
	`, id, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to mark instruction in progress: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *instructionRepositoryImpl) MarkSynced(ctx context.Context, id, organizationID, externalReference string, syncedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE withholding_instructions
		SET sync_status = 'synced', external_reference = $3, synced_at = $4, sync_error = NULL, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND sync_status = 'in_progress'
	`, id, organizationID, externalReference, syncedAt)
	if err != nil {
		return false, fmt.Errorf("failed to mark instruction synced: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *instructionRepositoryImpl) MarkFailed(ctx context.Context, id, organizationID, syncError string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE withholding_instructions
		SET sync_status = 'failed', sync_error = $3, retry_count = retry_count + 1, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND sync_status = 'in_progress'
	`, id, organizationID, syncError)
	if err != nil {
		return false, fmt.Errorf("failed to mark instruction failed: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *instructionRepositoryImpl) Retry(ctx context.Context, id, organizationID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE withholding_instructions
		SET sync_status = 'pending', sync_error = NULL, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND sync_status = 'failed'
	`, id, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to retry instruction: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *instructionRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM withholding_instructions
		WHERE id = $1 AND organization_id = $2 AND sync_status != 'synced'
	`, id, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to delete withholding instruction: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}
