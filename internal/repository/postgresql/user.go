package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/user"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, organization_id, email, password_hash, role, full_name, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, organization_id, email, password_hash, role, full_name, created_at, updated_at
	`

	var result user.User
	err := q.QueryRow(ctx, query,
		newUser.OrganizationID,
		newUser.Email,
		newUser.PasswordHash,
		string(newUser.Role),
		newUser.FullName,
	).Scan(
		&result.ID,
		&result.OrganizationID,
		&result.Email,
		&result.PasswordHash,
		&result.Role,
		&result.FullName,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return result, nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, email, password_hash, role, full_name, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var result user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&result.ID,
		&result.OrganizationID,
		&result.Email,
		&result.PasswordHash,
		&result.Role,
		&result.FullName,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return user.User{}, user.ErrUserNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return result, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, email, password_hash, role, full_name, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var result user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.OrganizationID,
		&result.Email,
		&result.PasswordHash,
		&result.Role,
		&result.FullName,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return user.User{}, user.ErrUserNotFound
	}
	if err != nil {
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return result, nil
}

func (r *userRepositoryImpl) GetByOrganizationID(ctx context.Context, organizationID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, email, password_hash, role, full_name, created_at, updated_at
		FROM users
		WHERE organization_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID,
			&u.OrganizationID,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.FullName,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, nil
}

func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1
	`, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}

	return nil
}

func (r *userRepositoryImpl) UpdateRole(ctx context.Context, userID, organizationID string, role user.Role) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		UPDATE users SET role = $3, updated_at = NOW() WHERE id = $1 AND organization_id = $2
	`, userID, organizationID, string(role))
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return user.ErrUserNotFound
	}

	return nil
}
