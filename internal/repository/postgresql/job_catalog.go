package postgresql

import (
	"context"
	"fmt"

	"github.com/haneco/timesheet-backend-go/internal/domain/catalog"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) catalog.JobRepository {
	return &jobRepositoryImpl{db: db}
}

// Legacy rows carry NULL project_type; they behave as group jobs.
const jobColumns = `id, name, unit, parent_id, COALESCE(project_type, 'group'), created_at, updated_at`

func scanJob(row pgx.Row) (catalog.Job, error) {
	var j catalog.Job
	err := row.Scan(
		&j.ID,
		&j.Name,
		&j.Unit,
		&j.ParentID,
		&j.ProjectType,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	return j, err
}

// Create implements catalog.JobRepository.
func (r *jobRepositoryImpl) Create(ctx context.Context, j catalog.Job) (catalog.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_catalog (id, name, unit, parent_id, project_type, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + jobColumns

	result, err := scanJob(q.QueryRow(ctx, query, j.Name, j.Unit, j.ParentID, j.ProjectType))
	if err != nil {
		return catalog.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	return result, nil
}

// Update implements catalog.JobRepository.
func (r *jobRepositoryImpl) Update(ctx context.Context, req catalog.UpdateJobRequest) (catalog.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_catalog
		SET name = COALESCE($2, name),
		    unit = COALESCE($3, unit),
		    parent_id = COALESCE($4, parent_id),
		    project_type = COALESCE($5, project_type),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + jobColumns

	result, err := scanJob(q.QueryRow(ctx, query, req.ID, req.Name, req.Unit, req.ParentID, req.ProjectType))
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.Job{}, catalog.ErrJobNotFound
		}
		return catalog.Job{}, fmt.Errorf("failed to update job: %w", err)
	}

	return result, nil
}

// Delete implements catalog.JobRepository.
func (r *jobRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM job_catalog WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrJobNotFound
	}

	return nil
}

// GetByID implements catalog.JobRepository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (catalog.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM job_catalog WHERE id = $1`

	j, err := scanJob(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.Job{}, catalog.ErrJobNotFound
		}
		return catalog.Job{}, fmt.Errorf("failed to get job: %w", err)
	}

	return j, nil
}

// GetByName implements catalog.JobRepository.
func (r *jobRepositoryImpl) GetByName(ctx context.Context, name string) (catalog.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM job_catalog WHERE name = $1`

	j, err := scanJob(q.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return catalog.Job{}, catalog.ErrJobNotFound
		}
		return catalog.Job{}, fmt.Errorf("failed to get job by name: %w", err)
	}

	return j, nil
}

// List implements catalog.JobRepository.
func (r *jobRepositoryImpl) List(ctx context.Context, projectType string) ([]catalog.Job, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM job_catalog`
	args := []interface{}{}
	if projectType != "" {
		query += ` WHERE COALESCE(project_type, 'group') = $1`
		args = append(args, projectType)
	}
	query += ` ORDER BY parent_id NULLS FIRST, name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []catalog.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

// ExistsByName implements catalog.JobRepository.
func (r *jobRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_catalog WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check job name: %w", err)
	}

	return exists, nil
}

// HasChildren implements catalog.JobRepository.
func (r *jobRepositoryImpl) HasChildren(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_catalog WHERE parent_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check job children: %w", err)
	}

	return exists, nil
}
