package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contract"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

const contractColumns = `
	sc.id, sc.organization_id, sc.supplier_id, sc.contract_number, sc.title,
	sc.start_date, sc.end_date, sc.status, sc.signed_at, sc.signed_by,
	sc.terminated_at, sc.termination_reason, sc.created_at, sc.updated_at
`

func scanContract(row pgx.Row) (contract.SupplierContract, error) {
	var c contract.SupplierContract
	err := row.Scan(
		&c.ID,
		&c.OrganizationID,
		&c.SupplierID,
		&c.ContractNumber,
		&c.Title,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.SignedAt,
		&c.SignedBy,
		&c.TerminatedAt,
		&c.TerminationReason,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *contractRepositoryImpl) Create(ctx context.Context, c contract.SupplierContract) (contract.SupplierContract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO supplier_contracts (id, organization_id, supplier_id, contract_number, title, start_date, end_date, status, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, 'draft', NOW(), NOW())
		RETURNING ` + strings.ReplaceAll(contractColumns, "sc.", "")

	result, err := scanContract(q.QueryRow(ctx, query,
		c.OrganizationID,
		c.SupplierID,
		c.ContractNumber,
		c.Title,
		c.StartDate,
		c.EndDate,
	))
	if err != nil {
		return contract.SupplierContract{}, fmt.Errorf("failed to create contract: %w", err)
	}

	return result, nil
}

func (r *contractRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (contract.SupplierContract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + contractColumns + `, s.name
		FROM supplier_contracts sc
		INNER JOIN suppliers s ON sc.supplier_id = s.id
		WHERE sc.id = $1 AND sc.organization_id = $2
	`

	var c contract.SupplierContract
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&c.ID,
		&c.OrganizationID,
		&c.SupplierID,
		&c.ContractNumber,
		&c.Title,
		&c.StartDate,
		&c.EndDate,
		&c.Status,
		&c.SignedAt,
		&c.SignedBy,
		&c.TerminatedAt,
		&c.TerminationReason,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.SupplierName,
	)
	if err == pgx.ErrNoRows {
		return contract.SupplierContract{}, contract.ErrContractNotFound
	}
	if err != nil {
		return contract.SupplierContract{}, fmt.Errorf("failed to get contract: %w", err)
	}

	return c, nil
}

func (r *contractRepositoryImpl) GetByOrganizationID(ctx context.Context, organizationID string) ([]contract.SupplierContract, error) {
	return r.list(ctx, `sc.organization_id = $1`, organizationID)
}

func (r *contractRepositoryImpl) GetBySupplierID(ctx context.Context, supplierID string, organizationID string) ([]contract.SupplierContract, error) {
	return r.list(ctx, `sc.supplier_id = $1 AND sc.organization_id = $2`, supplierID, organizationID)
}

func (r *contractRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]contract.SupplierContract, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, s.name, COUNT(e.id) AS engagement_count
		FROM supplier_contracts sc
		INNER JOIN suppliers s ON sc.supplier_id = s.id
		LEFT JOIN engagements e ON e.contract_id = sc.id
		WHERE %s
		GROUP BY sc.id, s.name
		ORDER BY sc.start_date DESC
	`, contractColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get contracts: %w", err)
	}
	defer rows.Close()

	var contracts []contract.SupplierContract
	for rows.Next() {
		var c contract.SupplierContract
		var count int64
		err := rows.Scan(
			&c.ID,
			&c.OrganizationID,
			&c.SupplierID,
			&c.ContractNumber,
			&c.Title,
			&c.StartDate,
			&c.EndDate,
			&c.Status,
			&c.SignedAt,
			&c.SignedBy,
			&c.TerminatedAt,
			&c.TerminationReason,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.SupplierName,
			&count,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		c.EngagementCount = &count
		contracts = append(contracts, c)
	}

	return contracts, nil
}

func (r *contractRepositoryImpl) ExistsByContractNumber(ctx context.Context, contractNumber string, organizationID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM supplier_contracts WHERE contract_number = $1 AND organization_id = $2)
	`, contractNumber, organizationID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check contract number: %w", err)
	}

	return exists, nil
}

func (r *contractRepositoryImpl) Update(ctx context.Context, req contract.UpdateContractRequest, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID, organizationID}
	argPos := 3

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.StartDate != nil {
		addSet("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		addSet("end_date", *req.EndDate)
	}

	// Only draft contracts are editable
	query := fmt.Sprintf(`
		UPDATE supplier_contracts
		SET %s
		WHERE id = $1 AND organization_id = $2 AND status = 'draft'
	`, strings.Join(setClauses, ", "))

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return contract.ErrContractNotDraft
	}

	return nil
}

func (r *contractRepositoryImpl) Sign(ctx context.Context, id, organizationID, signedBy string, signedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE supplier_contracts
		SET status = 'active', signed_at = $3, signed_by = $4, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status = 'draft'
	`, id, organizationID, signedAt, signedBy)
	if err != nil {
		return false, fmt.Errorf("failed to sign contract: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *contractRepositoryImpl) Terminate(ctx context.Context, id, organizationID, reason string, terminatedAt time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE supplier_contracts
		SET status = 'terminated', terminated_at = $3, termination_reason = $4, updated_at = NOW()
		WHERE id = $1 AND organization_id = $2 AND status NOT IN ('terminated', 'expired')
	`, id, organizationID, terminatedAt, reason)
	if err != nil {
		return false, fmt.Errorf("failed to terminate contract: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *contractRepositoryImpl) ExpireOutdated(ctx context.Context, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE supplier_contracts
		SET status = 'expired', updated_at = NOW()
		WHERE organization_id = $1 AND status = 'active' AND end_date IS NOT NULL AND end_date < CURRENT_DATE
	`, organizationID)
	if err != nil {
		return fmt.Errorf("failed to expire contracts: %w", err)
	}

	return nil
}

func (r *contractRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM supplier_contracts
		WHERE id = $1 AND organization_id = $2 AND status = 'draft'
	`, id, organizationID)
	if err != nil {
		return false, fmt.Errorf("failed to delete contract: %w", err)
	}

	return commandTag.RowsAffected() == 1, nil
}

func (r *contractRepositoryImpl) CountEngagements(ctx context.Context, id string, organizationID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM engagements WHERE contract_id = $1 AND organization_id = $2
	`, id, organizationID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count engagements: %w", err)
	}

	return count, nil
}
