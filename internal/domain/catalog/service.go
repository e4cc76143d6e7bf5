package catalog

import (
	"context"
)

type CatalogService interface {
	Create(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	// Update renames propagate to existing task rows referencing the old
	// job name.
	Update(ctx context.Context, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (JobResponse, error)
	List(ctx context.Context, projectType string) ([]JobResponse, error)
	Tree(ctx context.Context, projectType string) ([]JobTreeResponse, error)
}
