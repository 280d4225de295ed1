package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/siyanda-labs/contractor-backend-go/internal/domain/project"
	"github.com/siyanda-labs/contractor-backend-go/internal/pkg/database"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, organization_id, name, code, description, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, true, NOW(), NOW())
		RETURNING id, organization_id, name, code, description, is_active, created_at, updated_at
	`

	var result project.Project
	err := q.QueryRow(ctx, query, p.OrganizationID, p.Name, p.Code, p.Description).Scan(
		&result.ID,
		&result.OrganizationID,
		&result.Name,
		&result.Code,
		&result.Description,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return result, nil
}

func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string, organizationID string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, name, code, description, is_active, created_at, updated_at
		FROM projects
		WHERE id = $1 AND organization_id = $2
	`

	var result project.Project
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&result.ID,
		&result.OrganizationID,
		&result.Name,
		&result.Code,
		&result.Description,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return project.Project{}, project.ErrProjectNotFound
	}
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return result, nil
}

func (r *projectRepositoryImpl) GetByOrganizationID(ctx context.Context, organizationID string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, name, code, description, is_active, created_at, updated_at
		FROM projects
		WHERE organization_id = $1
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var p project.Project
		err := rows.Scan(
			&p.ID,
			&p.OrganizationID,
			&p.Name,
			&p.Code,
			&p.Description,
			&p.IsActive,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, nil
}

func (r *projectRepositoryImpl) ExistsByCode(ctx context.Context, code string, organizationID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM projects WHERE code = $1 AND organization_id = $2)
	`, code, organizationID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project code: %w", err)
	}

	return exists, nil
}

func (r *projectRepositoryImpl) Update(ctx context.Context, req project.UpdateProjectRequest, organizationID string) error {
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
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}

	query := fmt.Sprintf(`
		UPDATE projects
		SET %s
		WHERE id = $1 AND organization_id = $2
	`, strings.Join(setClauses, ", "))

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepositoryImpl) Delete(ctx context.Context, id string, organizationID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM projects WHERE id = $1 AND organization_id = $2
	`, id, organizationID)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return project.ErrProjectNotFound
	}

	return nil
}
