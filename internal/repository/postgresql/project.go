package postgresql

import (
	"context"
	"fmt"

	"github.com/haneco/timesheet-backend-go/internal/domain/project"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type projectRepositoryImpl struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepositoryImpl{db: db}
}

const projectColumns = `id, name, deadline, project_type, design_step, created_at, updated_at`

func scanProject(row pgx.Row) (project.Project, error) {
	var p project.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Deadline,
		&p.ProjectType,
		&p.DesignStep,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create implements project.ProjectRepository.
func (r *projectRepositoryImpl) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (id, name, deadline, project_type, design_step, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + projectColumns

	result, err := scanProject(q.QueryRow(ctx, query, p.Name, p.Deadline, p.ProjectType, p.DesignStep))
	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return result, nil
}

// Update implements project.ProjectRepository.
func (r *projectRepositoryImpl) Update(ctx context.Context, req project.UpdateProjectRequest) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE projects
		SET name = COALESCE($2, name),
		    deadline = COALESCE($3::date, deadline),
		    project_type = COALESCE($4, project_type),
		    design_step = COALESCE($5, design_step),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + projectColumns

	result, err := scanProject(q.QueryRow(ctx, query, req.ID, req.Name, req.Deadline, req.ProjectType, req.DesignStep))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	return result, nil
}

// Delete implements project.ProjectRepository.
func (r *projectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// GetByName implements project.ProjectRepository.
func (r *projectRepositoryImpl) GetByName(ctx context.Context, name string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects WHERE name = $1`

	p, err := scanProject(q.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by name: %w", err)
	}

	return p, nil
}

// List implements project.ProjectRepository.
func (r *projectRepositoryImpl) List(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// ExistsByName implements project.ProjectRepository.
func (r *projectRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project name: %w", err)
	}

	return exists, nil
}

// ListVisibleTo implements project.ProjectRepository.
func (r *projectRepositoryImpl) ListVisibleTo(ctx context.Context, userID string, managedNames []string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	if managedNames == nil {
		managedNames = []string{}
	}

	query := `
		SELECT DISTINCT p.id, p.name, p.deadline, p.project_type, p.design_step, p.created_at, p.updated_at
		FROM projects p
		LEFT JOIN tasks t ON t.project_id = p.id
		LEFT JOIN users u ON u.id = $1
		WHERE p.project_type = 'public'
		   OR p.name = ANY($2)
		   OR t.assignee = u.username
		ORDER BY p.name ASC
	`

	rows, err := q.Query(ctx, query, userID, managedNames)
	if err != nil {
		return nil, fmt.Errorf("failed to list visible projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}
