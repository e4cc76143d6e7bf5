package user

import (
	"context"
	"fmt"
	"time"

	"github.com/haneco/timesheet-backend-go/internal/domain/user"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
	}
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return user.UserResponse{}, err
	}
	if exists {
		return user.UserResponse{}, user.ErrUsernameTaken
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, err
	}

	newUser := user.User{
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
		Role:         user.Role(req.Role),
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to parse date of birth: %w", err)
		}
		newUser.DateOfBirth = &dob
	}

	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(created), nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	return responses, nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToResponse(u), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.UserRepository.Update(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// UpdateRoles implements user.UserService.
func (s *UserServiceImpl) UpdateRoles(ctx context.Context, req user.UpdateUserRolesRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	// Demoting the last admin would lock everyone out.
	if current.Role == user.RoleAdmin && user.Role(req.Role) != user.RoleAdmin {
		admins, err := s.CountByRole(ctx, user.RoleAdmin)
		if err != nil {
			return user.UserResponse{}, err
		}
		if admins <= 1 {
			return user.UserResponse{}, user.ErrCannotDeleteLastAdmin
		}
	}

	if err := s.UserRepository.UpdateRoles(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return err
	}

	return s.UpdatePassword(ctx, req.ID, hash)
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	current, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if current.Role == user.RoleAdmin {
		admins, err := s.CountByRole(ctx, user.RoleAdmin)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return user.ErrCannotDeleteLastAdmin
		}
	}

	return s.UserRepository.Delete(ctx, id)
}

// TouchLastSeen implements user.UserService.
func (s *UserServiceImpl) TouchLastSeen(ctx context.Context, id string) error {
	return s.UserRepository.TouchLastSeen(ctx, id, time.Now())
}
