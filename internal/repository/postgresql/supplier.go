package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/supplier"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type supplierRepositoryImpl struct {
	db *database.DB
}

func NewSupplierRepository(db *database.DB) supplier.SupplierRepository {
	return &supplierRepositoryImpl{db: db}
}

func (r *supplierRepositoryImpl) Create(ctx context.Context, s supplier.Supplier) (supplier.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO suppliers (id, organization_id, name, registration_number, tax_number, email, phone, address_line, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, organization_id, name, registration_number, tax_number, email, phone, address_line, created_at, updated_at
	`

	var result supplier.Supplier
	err := q.QueryRow(ctx, query,
		s.OrganizationID,
		s.Name,
		s.RegistrationNumber,
		s.TaxNumber,
		s.Email,
		s.Phone,
		s.AddressLine,
	).Scan(
		&result.ID,
		&result.OrganizationID,
		&result.Name,
		&result.RegistrationNumber,
		&result.TaxNumber,
		&result.Email,
		&result.Phone,
		&result.AddressLine,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return supplier.Supplier{}, fmt.Errorf("failed to create supplier: %w", err)
	}

	return result, nil
}

func (r *supplierRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (supplier.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, name, registration_number, tax_number, email, phone, address_line, created_at, updated_at
		FROM suppliers
		WHERE id = $1 AND organization_id = $2
	`

	var result supplier.Supplier
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&result.ID,
		&result.OrganizationID,
		&result.Name,
		&result.RegistrationNumber,
		&result.TaxNumber,
		&result.Email,
		&result.Phone,
		&result.AddressLine,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return supplier.Supplier{}, supplier.ErrSupplierNotFound
	}
	if err != nil {
		return supplier.Supplier{}, fmt.Errorf("failed to get supplier: %w", err)
	}

	return result, nil
}

func (r *supplierRepositoryImpl) GetByOrganizationID(ctx context.Context, organizationID string) ([]supplier.Supplier, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.organization_id, s.name, s.registration_number, s.tax_number, s.email, s.phone, s.address_line,
			   s.created_at, s.updated_at, COUNT(c.id) AS contractor_count
		FROM suppliers s
		LEFT JOIN contractors c ON c.supplier_id = s.id
		WHERE s.organization_id = $1
		GROUP BY s.id
		ORDER BY s.name ASC
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []supplier.Supplier
	for rows.Next() {
		var s supplier.Supplier
		var count int64
		err := rows.Scan(
			&s.ID,
			&s.OrganizationID,
			&s.Name,
			&s.RegistrationNumber,
			&s.TaxNumber,
			&s.Email,
			&s.Phone,
			&s.AddressLine,
			&s.CreatedAt,
			&s.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		s.ContractorCount = &count
		suppliers = append(suppliers, s)
	}

	return suppliers, nil
}

func (r *supplierRepositoryImpl) Update(ctx context.Context, req supplier.UpdateSupplierRequest, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID, organizationID}
	argPos := 3

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.RegistrationNumber != nil {
		addSet("registration_number", *req.RegistrationNumber)
	}
	if req.TaxNumber != nil {
		addSet("tax_number", *req.TaxNumber)
	}
	if req.Email != nil {
		addSet("email", *req.Email)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.AddressLine != nil {
		addSet("address_line", *req.AddressLine)
	}

	query := fmt.Sprintf(`
		UPDATE suppliers
		SET %s
		WHERE id = $1 AND organization_id = $2
	`, strings.Join(setClauses, ", "))

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return supplier.ErrSupplierNotFound
	}

	return nil
}

func (r *supplierRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM suppliers WHERE id = $1 AND organization_id = $2
	`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return supplier.ErrSupplierNotFound
	}

	return nil
}

func (r *supplierRepositoryImpl) CountContractors(ctx context.Context, id string, organizationID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM contractors WHERE supplier_id = $1 AND organization_id = $2
	`, id, organizationID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count contractors: %w", err)
	}

	return count, nil
}
