package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/withholding"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type classificationRepositoryImpl struct {
	db *database.DB
}

func NewClassificationRepository(db *database.DB) withholding.ClassificationRepository {
	return &classificationRepositoryImpl{db: db}
}

const classificationColumns = `
	id, organization_id, contractor_id, engagement_id, classification,
	effective_from, effective_to, risk_score, assessed_by, assessed_at,
	created_at, updated_at
`

func scanClassification(row pgx.Row) (withholding.TaxClassification, error) {
	var c withholding.TaxClassification
	err := row.Scan(
		&c.ID,
		&c.OrganizationID,
		&c.ContractorID,
		&c.EngagementID,
		&c.Classification,
		&c.EffectiveFrom,
		&c.EffectiveTo,
		&c.RiskScore,
		&c.AssessedBy,
		&c.AssessedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *classificationRepositoryImpl) Create(ctx context.Context, c withholding.TaxClassification) (withholding.TaxClassification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tax_classifications (id, organization_id, contractor_id, engagement_id, classification, effective_from, effective_to, risk_score, assessed_by, assessed_at, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + classificationColumns

	result, err := scanClassification(q.QueryRow(ctx, query,
		c.OrganizationID,
		c.ContractorID,
		c.EngagementID,
		c.Classification,
		c.EffectiveFrom,
		c.EffectiveTo,
		c.RiskScore,
		c.AssessedBy,
		c.AssessedAt,
	))
	if err != nil {
		return withholding.TaxClassification{}, fmt.Errorf("failed to create tax classification: %w", err)
	}

	return result, nil
}

func (r *classificationRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (withholding.TaxClassification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + classificationColumns + `
		FROM tax_classifications
		WHERE id = $1 AND organization_id = $2
	`

	c, err := scanClassification(q.QueryRow(ctx, query, id, organizationID))
	if err == pgx.ErrNoRows {
		return withholding.TaxClassification{}, withholding.ErrClassificationNotFound
	}
	if err != nil {
		return withholding.TaxClassification{}, fmt.Errorf("failed to get tax classification: %w", err)
	}

	return c, nil
}

func (r *classificationRepositoryImpl) GetByContractorID(ctx context.Context, contractorID string, organizationID string) ([]withholding.TaxClassification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + classificationColumns + `
		FROM tax_classifications
		WHERE contractor_id = $1 AND organization_id = $2
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query, contractorID, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tax classifications: %w", err)
	}
	defer rows.Close()

	var classifications []withholding.TaxClassification
	for rows.Next() {
		c, err := scanClassification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax classification: %w", err)
		}
		classifications = append(classifications, c)
	}

	return classifications, nil
}

func (r *classificationRepositoryImpl) HasOverlap(ctx context.Context, contractorID string, engagementID *string, organizationID string, from time.Time, to *time.Time, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM tax_classifications
			WHERE contractor_id = $1
			  AND organization_id = $2
			  AND engagement_id IS NOT DISTINCT FROM $3
			  AND (effective_to IS NULL OR effective_to > $4)
			  AND ($5::date IS NULL OR effective_from < $5)
			  AND ($6::uuid IS NULL OR id != $6)
		)
	`, contractorID, organizationID, engagementID, from, to, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check classification overlap: %w", err)
	}

	return exists, nil
}

func (r *classificationRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM tax_classifications
		WHERE id = $1 AND organization_id = $2
	`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete tax classification: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return withholding.ErrClassificationNotFound
	}

	return nil
}
