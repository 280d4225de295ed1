package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contract"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type engagementRepositoryImpl struct {
	db *database.DB
}

func NewEngagementRepository(db *database.DB) contract.EngagementRepository {
	return &engagementRepositoryImpl{db: db}
}

const engagementColumns = `
	e.id, e.organization_id, e.contract_id, e.contractor_id, e.role_title,
	e.rate, e.rate_type, e.currency, e.start_date, e.end_date, e.is_active,
	e.created_at, e.updated_at
`

func scanEngagement(row pgx.Row) (contract.Engagement, error) {
	var e contract.Engagement
	err := row.Scan(
		&e.ID,
		&e.OrganizationID,
		&e.ContractID,
		&e.ContractorID,
		&e.RoleTitle,
		&e.Rate,
		&e.RateType,
		&e.Currency,
		&e.StartDate,
		&e.EndDate,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func (r *engagementRepositoryImpl) Create(ctx context.Context, e contract.Engagement) (contract.Engagement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO engagements (id, organization_id, contract_id, contractor_id, role_title, rate, rate_type, currency, start_date, end_date, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, NOW(), NOW())
		RETURNING id, organization_id, contract_id, contractor_id, role_title, rate, rate_type, currency, start_date, end_date, is_active, created_at, updated_at
	`

	result, err := scanEngagement(q.QueryRow(ctx, query,
		e.OrganizationID,
		e.ContractID,
		e.ContractorID,
		e.RoleTitle,
		e.Rate,
		e.RateType,
		e.Currency,
		e.StartDate,
		e.EndDate,
	))
	if err != nil {
		return contract.Engagement{}, fmt.Errorf("failed to create engagement: %w", err)
	}

	return result, nil
}

func (r *engagementRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (contract.Engagement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + engagementColumns + `, c.full_name
		FROM engagements e
		INNER JOIN contractors c ON e.contractor_id = c.id
		WHERE e.id = $1 AND e.organization_id = $2
	`

	var e contract.Engagement
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&e.ID,
		&e.OrganizationID,
		&e.ContractID,
		&e.ContractorID,
		&e.RoleTitle,
		&e.Rate,
		&e.RateType,
		&e.Currency,
		&e.StartDate,
		&e.EndDate,
		&e.IsActive,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.ContractorName,
	)
	if err == pgx.ErrNoRows {
		return contract.Engagement{}, contract.ErrEngagementNotFound
	}
	if err != nil {
		return contract.Engagement{}, fmt.Errorf("failed to get engagement: %w", err)
	}

	return e, nil
}

func (r *engagementRepositoryImpl) GetByContractID(ctx context.Context, contractID string, organizationID string) ([]contract.Engagement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + engagementColumns + `, c.full_name
		FROM engagements e
		INNER JOIN contractors c ON e.contractor_id = c.id
		WHERE e.contract_id = $1 AND e.organization_id = $2
		ORDER BY e.start_date DESC
	`

	return r.queryList(ctx, q, query, contractID, organizationID)
}

func (r *engagementRepositoryImpl) GetActiveByContractorID(ctx context.Context, contractorID string, organizationID string) ([]contract.Engagement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + engagementColumns + `, c.full_name
		FROM engagements e
		INNER JOIN contractors c ON e.contractor_id = c.id
		WHERE e.contractor_id = $1 AND e.organization_id = $2 AND e.is_active = TRUE
		ORDER BY e.start_date DESC
	`

	return r.queryList(ctx, q, query, contractorID, organizationID)
}

func (r *engagementRepositoryImpl) queryList(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]contract.Engagement, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get engagements: %w", err)
	}
	defer rows.Close()

	var engagements []contract.Engagement
	for rows.Next() {
		var e contract.Engagement
		err := rows.Scan(
			&e.ID,
			&e.OrganizationID,
			&e.ContractID,
			&e.ContractorID,
			&e.RoleTitle,
			&e.Rate,
			&e.RateType,
			&e.Currency,
			&e.StartDate,
			&e.EndDate,
			&e.IsActive,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.ContractorName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan engagement: %w", err)
		}
		engagements = append(engagements, e)
	}

	return engagements, nil
}

func (r *engagementRepositoryImpl) HasActiveOverlap(ctx context.Context, contractorID, organizationID string, start time.Time, end *time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Open-ended windows (NULL end_date) overlap everything after their start.
	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM engagements
			WHERE contractor_id = $1
			  AND organization_id = $2
			  AND is_active = TRUE
			  AND (end_date IS NULL OR end_date > $3)
			  AND ($4::date IS NULL OR start_date < $4)
		)
	`, contractorID, organizationID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check engagement overlap: %w", err)
	}

	return exists, nil
}

func (r *engagementRepositoryImpl) Deactivate(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE engagements
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2
	`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to deactivate engagement: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return contract.ErrEngagementNotFound
	}

	return nil
}

func (r *engagementRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM engagements
		WHERE id = $1 AND organization_id = $2
	`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete engagement: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return contract.ErrEngagementNotFound
	}

	return nil
}
