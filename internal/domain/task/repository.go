package task

import (
	"context"
)

type TaskRepository interface {
	CreateBatch(ctx context.Context, tasks []Task) ([]Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	ListByProject(ctx context.Context, projectID string) ([]Task, error)
	ListByAssignee(ctx context.Context, username string) ([]Task, error)
	Update(ctx context.Context, t Task) (Task, error)
	Delete(ctx context.Context, id string) error
	ExistsByProject(ctx context.Context, projectID string) (bool, error)
	// RenameJob rewrites the task column when a catalog job is renamed.
	RenameJob(ctx context.Context, oldName, newName string) error
	ProjectStats(ctx context.Context, projectID string) (ProgressStats, error)
	AssigneeStats(ctx context.Context, username string) (ProgressStats, error)
}
