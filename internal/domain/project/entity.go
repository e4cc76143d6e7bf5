package project

import "time"

type ProjectType string

const (
	TypePublic ProjectType = "public" // visible to every user
	TypeGroup  ProjectType = "group"  // visible to managers, leaders, and assignees only
)

type Project struct {
	ID          string
	Name        string
	Deadline    *time.Time
	ProjectType ProjectType
	DesignStep  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPublic reports whether every user may see this project.
func (p *Project) IsPublic() bool {
	return p.ProjectType == TypePublic
}
