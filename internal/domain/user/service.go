package user

import (
	"context"
)

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	List(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	UpdateRoles(ctx context.Context, req UpdateUserRolesRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
	Delete(ctx context.Context, id string) error
	TouchLastSeen(ctx context.Context, id string) error
}
