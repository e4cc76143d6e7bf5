package catalog

import (
	"context"
)

type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	Update(ctx context.Context, req UpdateJobRequest) (Job, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Job, error)
	GetByName(ctx context.Context, name string) (Job, error)
	List(ctx context.Context, projectType string) ([]Job, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	HasChildren(ctx context.Context, id string) (bool, error)
}
