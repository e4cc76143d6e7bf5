package task

import (
	"context"
)

type TaskService interface {
	// Assign creates the rows in one batch. actorID must manage the
	// target project. Daily-wage rows get hours computed from their time
	// range and the range stamped into the note.
	Assign(ctx context.Context, actorID string, req AssignTasksRequest) ([]TaskResponse, error)
	ListByProject(ctx context.Context, projectID string) ([]TaskResponse, error)
	ListByAssignee(ctx context.Context, username string) ([]TaskResponse, error)
	GetByID(ctx context.Context, id string) (TaskResponse, error)
	// Update re-extracts the time token when the note changes on a
	// daily-wage task, recomputes hours, and reinserts the annotation.
	Update(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, id string) error
	ProjectStats(ctx context.Context, projectID string) (ProgressStats, error)
	AssigneeStats(ctx context.Context, username string) (ProgressStats, error)
}
