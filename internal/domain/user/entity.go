package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Full access - accounts, projects, job catalog
	RoleManager Role = "manager" // Manages or leads at least one project
	RoleUser    Role = "user"    // Regular staff
)

type User struct {
	ID           string
	Username     string
	DisplayName  string
	PasswordHash string
	DateOfBirth  *time.Time
	GoogleEmail  *string
	Role         Role
	ManagerOf    []string // project names this user manages
	LeaderOf     []string // project names this user leads
	LastSeenAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user manages or leads any project, or is admin
func (u *User) IsManager() bool {
	return u.Role == RoleAdmin || u.Role == RoleManager ||
		len(u.ManagerOf) > 0 || len(u.LeaderOf) > 0
}

// ManagedProjects returns the union of managed and led project names.
func (u *User) ManagedProjects() []string {
	seen := make(map[string]struct{}, len(u.ManagerOf)+len(u.LeaderOf))
	var names []string
	for _, name := range append(append([]string{}, u.ManagerOf...), u.LeaderOf...) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// CanManageProject checks if user can assign work on the named project
func (u *User) CanManageProject(name string) bool {
	if u.IsAdmin() {
		return true
	}
	for _, p := range u.ManagerOf {
		if p == name {
			return true
		}
	}
	for _, p := range u.LeaderOf {
		if p == name {
			return true
		}
	}
	return false
}
