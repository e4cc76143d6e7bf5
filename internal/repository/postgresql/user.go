package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/haneco/timesheet-backend-go/internal/domain/user"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, username, display_name, password_hash, date_of_birth, google_email, role, manager_of, leader_of, last_seen_at, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.DisplayName,
		&u.PasswordHash,
		&u.DateOfBirth,
		&u.GoogleEmail,
		&u.Role,
		&u.ManagerOf,
		&u.LeaderOf,
		&u.LastSeenAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

// GetByUsername implements user.UserRepository.
func (r *userRepositoryImpl) GetByUsername(ctx context.Context, username string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	u, err := scanUser(q.QueryRow(ctx, query, username))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	return u, nil
}

// GetByGoogleEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByGoogleEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE google_email = $1`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by google email: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users ORDER BY username ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, username, display_name, password_hash, date_of_birth, role, manager_of, leader_of, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + userColumns

	managerOf := newUser.ManagerOf
	if managerOf == nil {
		managerOf = []string{}
	}
	leaderOf := newUser.LeaderOf
	if leaderOf == nil {
		leaderOf = []string{}
	}

	u, err := scanUser(q.QueryRow(ctx, query,
		newUser.Username,
		newUser.DisplayName,
		newUser.PasswordHash,
		newUser.DateOfBirth,
		newUser.Role,
		managerOf,
		leaderOf,
	))
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// ExistsByUsername implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return exists, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET display_name = COALESCE($2, display_name),
		    date_of_birth = COALESCE($3::date, date_of_birth),
		    updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.DisplayName, req.DateOfBirth)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// UpdateRoles implements user.UserRepository.
func (r *userRepositoryImpl) UpdateRoles(ctx context.Context, req user.UpdateUserRolesRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET role = $2, manager_of = $3, leader_of = $4, updated_at = NOW()
		WHERE id = $1
	`

	managerOf := req.ManagerOf
	if managerOf == nil {
		managerOf = []string{}
	}
	leaderOf := req.LeaderOf
	if leaderOf == nil {
		leaderOf = []string{}
	}

	tag, err := q.Exec(ctx, query, req.ID, req.Role, managerOf, leaderOf)
	if err != nil {
		return fmt.Errorf("failed to update user roles: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`

	tag, err := q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// TouchLastSeen implements user.UserRepository.
func (r *userRepositoryImpl) TouchLastSeen(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE users SET last_seen_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return fmt.Errorf("failed to touch last seen: %w", err)
	}

	return nil
}

// CountByRole implements user.UserRepository.
func (r *userRepositoryImpl) CountByRole(ctx context.Context, role user.Role) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}

	return count, nil
}

// RenameManagedProject implements user.UserRepository.
func (r *userRepositoryImpl) RenameManagedProject(ctx context.Context, oldName, newName string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET manager_of = array_replace(manager_of, $1, $2),
		    leader_of = array_replace(leader_of, $1, $2),
		    updated_at = NOW()
		WHERE $1 = ANY(manager_of) OR $1 = ANY(leader_of)
	`

	if _, err := q.Exec(ctx, query, oldName, newName); err != nil {
		return fmt.Errorf("failed to rename managed project: %w", err)
	}

	return nil
}
