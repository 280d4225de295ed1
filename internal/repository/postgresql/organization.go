package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/organization"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

func (r *organizationRepositoryImpl) Create(ctx context.Context, org organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO organizations (id, name, username, registration_number, tax_number, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, username, registration_number, tax_number, created_at, updated_at
	`

	var result organization.Organization
	err := q.QueryRow(ctx, query, org.Name, org.Username, org.RegistrationNumber, org.TaxNumber).Scan(
		&result.ID,
		&result.Name,
		&result.Username,
		&result.RegistrationNumber,
		&result.TaxNumber,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return organization.Organization{}, fmt.Errorf("failed to create organization: %w", err)
	}

	return result, nil
}

func (r *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, username, registration_number, tax_number, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	var result organization.Organization
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Username,
		&result.RegistrationNumber,
		&result.TaxNumber,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	if err != nil {
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return result, nil
}

func (r *organizationRepositoryImpl) GetByUsername(ctx context.Context, username string) (organization.Organization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, username, registration_number, tax_number, created_at, updated_at
		FROM organizations
		WHERE username = $1
	`

	var result organization.Organization
	err := q.QueryRow(ctx, query, username).Scan(
		&result.ID,
		&result.Name,
		&result.Username,
		&result.RegistrationNumber,
		&result.TaxNumber,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return organization.Organization{}, organization.ErrOrganizationNotFound
	}
	if err != nil {
		return organization.Organization{}, fmt.Errorf("failed to get organization by username: %w", err)
	}

	return result, nil
}

func (r *organizationRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM organizations WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check organization username: %w", err)
	}

	return exists, nil
}

func (r *organizationRepositoryImpl) Update(ctx context.Context, org organization.Organization) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE organizations
		SET name = $2, registration_number = $3, tax_number = $4, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, org.ID, org.Name, org.RegistrationNumber, org.TaxNumber)
	if err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return organization.ErrOrganizationNotFound
	}

	return nil
}
