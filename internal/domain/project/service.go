package project

import (
	"context"
)

type ProjectService interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (ProjectResponse, error)
	List(ctx context.Context) ([]ProjectResponse, error)
	// ListVisible returns public projects plus those the user manages,
	// leads, or has tasks on.
	ListVisible(ctx context.Context, userID string) ([]ProjectResponse, error)
}
