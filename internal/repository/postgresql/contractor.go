package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/contractor"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type contractorRepositoryImpl struct {
	db *database.DB
}

func NewContractorRepository(db *database.DB) contractor.ContractorRepository {
	return &contractorRepositoryImpl{db: db}
}

func (r *contractorRepositoryImpl) Create(ctx context.Context, c contractor.Contractor) (contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contractors (id, organization_id, supplier_id, full_name, email, phone, role_title, tax_reference, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, organization_id, supplier_id, full_name, email, phone, role_title, tax_reference, created_at, updated_at
	`

	var result contractor.Contractor
	err := q.QueryRow(ctx, query,
		c.OrganizationID,
		c.SupplierID,
		c.FullName,
		c.Email,
		c.Phone,
		c.RoleTitle,
		c.TaxReference,
	).Scan(
		&result.ID,
		&result.OrganizationID,
		&result.SupplierID,
		&result.FullName,
		&result.Email,
		&result.Phone,
		&result.RoleTitle,
		&result.TaxReference,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return contractor.Contractor{}, fmt.Errorf("failed to create contractor: %w", err)
	}

	return result, nil
}

func (r *contractorRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.organization_id, c.supplier_id, c.full_name, c.email, c.phone, c.role_title, c.tax_reference,
			   c.created_at, c.updated_at, s.name
		FROM contractors c
		INNER JOIN suppliers s ON c.supplier_id = s.id
		WHERE c.id = $1 AND c.organization_id = $2
	`

	var result contractor.Contractor
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&result.ID,
		&result.OrganizationID,
		&result.SupplierID,
		&result.FullName,
		&result.Email,
		&result.Phone,
		&result.RoleTitle,
		&result.TaxReference,
		&result.CreatedAt,
		&result.UpdatedAt,
		&result.SupplierName,
	)
	if err == pgx.ErrNoRows {
		return contractor.Contractor{}, contractor.ErrContractorNotFound
	}
	if err != nil {
		return contractor.Contractor{}, fmt.Errorf("failed to get contractor: %w", err)
	}

	return result, nil
}

func (r *contractorRepositoryImpl) GetByOrganizationID(ctx context.Context, organizationID string) ([]contractor.Contractor, error) {
	return r.list(ctx, `c.organization_id = $1`, organizationID)
}

func (r *contractorRepositoryImpl) GetBySupplierID(ctx context.Context, supplierID string, organizationID string) ([]contractor.Contractor, error) {
	return r.list(ctx, `c.supplier_id = $1 AND c.organization_id = $2`, supplierID, organizationID)
}

func (r *contractorRepositoryImpl) list(ctx context.Context, where string, args ...interface{}) ([]contractor.Contractor, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT c.id, c.organization_id, c.supplier_id, c.full_name, c.email, c.phone, c.role_title, c.tax_reference,
			   c.created_at, c.updated_at, s.name
		FROM contractors c
		INNER JOIN suppliers s ON c.supplier_id = s.id
		WHERE %s
		ORDER BY c.full_name ASC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get contractors: %w", err)
	}
	defer rows.Close()

	var contractors []contractor.Contractor
	for rows.Next() {
		var c contractor.Contractor
		err := rows.Scan(
			&c.ID,
			&c.OrganizationID,
			&c.SupplierID,
			&c.FullName,
			&c.Email,
			&c.Phone,
			&c.RoleTitle,
			&c.TaxReference,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.SupplierName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contractor: %w", err)
		}
		contractors = append(contractors, c)
	}

	return contractors, nil
}

func (r *contractorRepositoryImpl) Update(ctx context.Context, req contractor.UpdateContractorRequest, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID, organizationID}
	argPos := 3

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.FullName != nil {
		addSet("full_name", *req.FullName)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.RoleTitle != nil {
		addSet("role_title", *req.RoleTitle)
	}
	if req.TaxReference != nil {
		addSet("tax_reference", *req.TaxReference)
	}

	query := fmt.Sprintf(`
		UPDATE contractors
		SET %s
		WHERE id = $1 AND organization_id = $2
	`, strings.Join(setClauses, ", "))

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update contractor: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return contractor.ErrContractorNotFound
	}

	return nil
}

func (r *contractorRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM contractors WHERE id = $1 AND organization_id = $2
	`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete contractor: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return contractor.ErrContractorNotFound
	}

	return nil
}

func (r *contractorRepositoryImpl) CountTimesheets(ctx context.Context, id string, organizationID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM timesheets WHERE contractor_id = $1 AND organization_id = $2
	`, id, organizationID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count timesheets: %w", err)
	}

	return count, nil
}

func (r *contractorRepositoryImpl) CountEngagements(ctx context.Context, id string, organizationID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM engagements WHERE contractor_id = $1 AND organization_id = $2
	`, id, organizationID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count engagements: %w", err)
	}

	return count, nil
}
