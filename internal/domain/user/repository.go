package user

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByGoogleEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	UpdateRoles(ctx context.Context, req UpdateUserRolesRequest) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	TouchLastSeen(ctx context.Context, id string, at time.Time) error
	CountByRole(ctx context.Context, role Role) (int, error)
	RenameManagedProject(ctx context.Context, oldName, newName string) error
}
