package project

import (
	"context"
	"fmt"
	"time"

	"github.com/haneco/timesheet-backend-go/internal/domain/project"
	"github.com/haneco/timesheet-backend-go/internal/domain/task"
	"github.com/haneco/timesheet-backend-go/internal/domain/user"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/haneco/timesheet-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ProjectServiceImpl struct {
	db *database.DB
	project.ProjectRepository
	user.UserRepository
	task.TaskRepository
}

func NewProjectService(db *database.DB, projectRepository project.ProjectRepository, userRepository user.UserRepository, taskRepository task.TaskRepository) project.ProjectService {
	return &ProjectServiceImpl{
		db:                db,
		ProjectRepository: projectRepository,
		UserRepository:    userRepository,
		TaskRepository:    taskRepository,
	}
}

// Create implements project.ProjectService.
func (s *ProjectServiceImpl) Create(ctx context.Context, req project.CreateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	exists, err := s.ExistsByName(ctx, req.Name)
	if err != nil {
		return project.ProjectResponse{}, err
	}
	if exists {
		return project.ProjectResponse{}, project.ErrProjectNameTaken
	}

	p := project.Project{
		Name:        req.Name,
		ProjectType: project.ProjectType(req.ProjectType),
		DesignStep:  req.DesignStep,
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return project.ProjectResponse{}, fmt.Errorf("failed to parse deadline: %w", err)
		}
		p.Deadline = &deadline
	}

	created, err := s.ProjectRepository.Create(ctx, p)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.ToResponse(created), nil
}

// Update implements project.ProjectService. A rename propagates to the
// manager_of / leader_of lists on user rows, which reference projects by
// name.
func (s *ProjectServiceImpl) Update(ctx context.Context, req project.UpdateProjectRequest) (project.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return project.ProjectResponse{}, err
	}

	current, err := s.ProjectRepository.GetByID(ctx, req.ID)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	renaming := req.Name != nil && *req.Name != current.Name
	if renaming {
		exists, err := s.ExistsByName(ctx, *req.Name)
		if err != nil {
			return project.ProjectResponse{}, err
		}
		if exists {
			return project.ProjectResponse{}, project.ErrProjectNameTaken
		}
	}

	var updated project.Project
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.ProjectRepository.Update(txCtx, req)
		if err != nil {
			return err
		}

		if renaming {
			return s.RenameManagedProject(txCtx, current.Name, *req.Name)
		}
		return nil
	})
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.ToResponse(updated), nil
}

// Delete implements project.ProjectService.
func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	hasTasks, err := s.ExistsByProject(ctx, id)
	if err != nil {
		return err
	}
	if hasTasks {
		return project.ErrProjectHasTasks
	}

	return s.ProjectRepository.Delete(ctx, id)
}

// GetByID implements project.ProjectService.
func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (project.ProjectResponse, error) {
	p, err := s.ProjectRepository.GetByID(ctx, id)
	if err != nil {
		return project.ProjectResponse{}, err
	}

	return project.ToResponse(p), nil
}

// List implements project.ProjectService.
func (s *ProjectServiceImpl) List(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.ProjectRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	return toResponses(projects), nil
}

// ListVisible implements project.ProjectService.
func (s *ProjectServiceImpl) ListVisible(ctx context.Context, userID string) ([]project.ProjectResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if u.IsAdmin() {
		return s.List(ctx)
	}

	projects, err := s.ListVisibleTo(ctx, userID, u.ManagedProjects())
	if err != nil {
		return nil, err
	}

	return toResponses(projects), nil
}

func toResponses(projects []project.Project) []project.ProjectResponse {
	responses := make([]project.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, project.ToResponse(p))
	}
	return responses
}
