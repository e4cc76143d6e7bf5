package postgresql

import (
	"context"
	"fmt"

	"github.com/haneco/timesheet-backend-go/internal/domain/task"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

const taskColumns = `id, project_id, task, assignee, khoi_luong, deadline, note, progress, created_at, updated_at`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.Task,
		&t.Assignee,
		&t.KhoiLuong,
		&t.Deadline,
		&t.Note,
		&t.Progress,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

// CreateBatch implements task.TaskRepository.
func (r *taskRepositoryImpl) CreateBatch(ctx context.Context, tasks []task.Task) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, project_id, task, assignee, khoi_luong, deadline, note, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + taskColumns

	created := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		row, err := scanTask(q.QueryRow(ctx, query,
			t.ID,
			t.ProjectID,
			t.Task,
			t.Assignee,
			t.KhoiLuong,
			t.Deadline,
			t.Note,
			t.Progress,
		))
		if err != nil {
			return nil, fmt.Errorf("failed to create task: %w", err)
		}
		created = append(created, row)
	}

	return created, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

// ListByProject implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByProject(ctx context.Context, projectID string) ([]task.Task, error) {
	return r.list(ctx, `project_id = $1`, projectID)
}

// ListByAssignee implements task.TaskRepository.
func (r *taskRepositoryImpl) ListByAssignee(ctx context.Context, username string) ([]task.Task, error) {
	return r.list(ctx, `assignee = $1`, username)
}

func (r *taskRepositoryImpl) list(ctx context.Context, where string, arg interface{}) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + where + ` ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// Update implements task.TaskRepository.
func (r *taskRepositoryImpl) Update(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET khoi_luong = $2, deadline = $3, note = $4, progress = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + taskColumns

	result, err := scanTask(q.QueryRow(ctx, query, t.ID, t.KhoiLuong, t.Deadline, t.Note, t.Progress))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return result, nil
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

// ExistsByProject implements task.TaskRepository.
func (r *taskRepositoryImpl) ExistsByProject(ctx context.Context, projectID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tasks WHERE project_id = $1)`, projectID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project tasks: %w", err)
	}

	return exists, nil
}

// RenameJob implements task.TaskRepository.
func (r *taskRepositoryImpl) RenameJob(ctx context.Context, oldName, newName string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE tasks SET task = $2, updated_at = NOW() WHERE task = $1`, oldName, newName)
	if err != nil {
		return fmt.Errorf("failed to rename job on tasks: %w", err)
	}

	return nil
}

// ProjectStats implements task.TaskRepository.
func (r *taskRepositoryImpl) ProjectStats(ctx context.Context, projectID string) (task.ProgressStats, error) {
	return r.stats(ctx, `project_id = $1`, projectID)
}

// AssigneeStats implements task.TaskRepository.
func (r *taskRepositoryImpl) AssigneeStats(ctx context.Context, username string) (task.ProgressStats, error) {
	return r.stats(ctx, `assignee = $1`, username)
}

func (r *taskRepositoryImpl) stats(ctx context.Context, where string, arg interface{}) (task.ProgressStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE progress >= 100),
		       COUNT(*) FILTER (WHERE progress > 0 AND progress < 100),
		       COUNT(*) FILTER (WHERE progress = 0),
		       COALESCE(AVG(progress), 0)
		FROM tasks
		WHERE ` + where

	var stats task.ProgressStats
	err := q.QueryRow(ctx, query, arg).Scan(
		&stats.Total,
		&stats.Done,
		&stats.InProgress,
		&stats.NotStarted,
		&stats.MeanProgress,
	)
	if err != nil {
		return task.ProgressStats{}, fmt.Errorf("failed to aggregate task stats: %w", err)
	}

	return stats, nil
}
