package project

import (
	"context"
)

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, req UpdateProjectRequest) (Project, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Project, error)
	GetByName(ctx context.Context, name string) (Project, error)
	List(ctx context.Context) ([]Project, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// ListVisibleTo returns public projects plus projects in names plus
	// projects the user has tasks on.
	ListVisibleTo(ctx context.Context, userID string, managedNames []string) ([]Project, error)
}
