package catalog

import (
	"context"

	"github.com/haneco/timesheet-backend-go/internal/domain/catalog"
	"github.com/haneco/timesheet-backend-go/internal/domain/task"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/haneco/timesheet-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type CatalogServiceImpl struct {
	db *database.DB
	catalog.JobRepository
	task.TaskRepository
}

func NewCatalogService(db *database.DB, jobRepository catalog.JobRepository, taskRepository task.TaskRepository) catalog.CatalogService {
	return &CatalogServiceImpl{
		db:             db,
		JobRepository:  jobRepository,
		TaskRepository: taskRepository,
	}
}

// Create implements catalog.CatalogService.
func (s *CatalogServiceImpl) Create(ctx context.Context, req catalog.CreateJobRequest) (catalog.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.JobResponse{}, err
	}

	exists, err := s.ExistsByName(ctx, req.Name)
	if err != nil {
		return catalog.JobResponse{}, err
	}
	if exists {
		return catalog.JobResponse{}, catalog.ErrJobNameTaken
	}

	if req.ParentID != nil {
		parent, err := s.JobRepository.GetByID(ctx, *req.ParentID)
		if err != nil {
			return catalog.JobResponse{}, catalog.ErrParentNotFound
		}
		// Two levels only.
		if !parent.IsParent() {
			return catalog.JobResponse{}, catalog.ErrNestedParent
		}
	}

	projectType := req.ProjectType
	if projectType == "" {
		projectType = "group"
	}

	created, err := s.JobRepository.Create(ctx, catalog.Job{
		Name:        req.Name,
		Unit:        req.Unit,
		ParentID:    req.ParentID,
		ProjectType: projectType,
	})
	if err != nil {
		return catalog.JobResponse{}, err
	}

	return catalog.ToResponse(created), nil
}

// Update implements catalog.CatalogService. A rename rewrites the task
// column of every assigned row referencing the old name.
func (s *CatalogServiceImpl) Update(ctx context.Context, req catalog.UpdateJobRequest) (catalog.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.JobResponse{}, err
	}

	current, err := s.JobRepository.GetByID(ctx, req.ID)
	if err != nil {
		return catalog.JobResponse{}, err
	}

	renaming := req.Name != nil && *req.Name != current.Name
	if renaming {
		exists, err := s.ExistsByName(ctx, *req.Name)
		if err != nil {
			return catalog.JobResponse{}, err
		}
		if exists {
			return catalog.JobResponse{}, catalog.ErrJobNameTaken
		}
	}

	if req.ParentID != nil {
		if *req.ParentID == req.ID {
			return catalog.JobResponse{}, catalog.ErrNestedParent
		}
		parent, err := s.JobRepository.GetByID(ctx, *req.ParentID)
		if err != nil {
			return catalog.JobResponse{}, catalog.ErrParentNotFound
		}
		if !parent.IsParent() {
			return catalog.JobResponse{}, catalog.ErrNestedParent
		}
	}

	var updated catalog.Job
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, err = s.JobRepository.Update(txCtx, req)
		if err != nil {
			return err
		}

		if renaming {
			return s.RenameJob(txCtx, current.Name, *req.Name)
		}
		return nil
	})
	if err != nil {
		return catalog.JobResponse{}, err
	}

	return catalog.ToResponse(updated), nil
}

// Delete implements catalog.CatalogService.
func (s *CatalogServiceImpl) Delete(ctx context.Context, id string) error {
	hasChildren, err := s.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return catalog.ErrJobHasChildren
	}

	return s.JobRepository.Delete(ctx, id)
}

// GetByID implements catalog.CatalogService.
func (s *CatalogServiceImpl) GetByID(ctx context.Context, id string) (catalog.JobResponse, error) {
	j, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return catalog.JobResponse{}, err
	}

	return catalog.ToResponse(j), nil
}

// List implements catalog.CatalogService.
func (s *CatalogServiceImpl) List(ctx context.Context, projectType string) ([]catalog.JobResponse, error) {
	jobs, err := s.JobRepository.List(ctx, projectType)
	if err != nil {
		return nil, err
	}

	responses := make([]catalog.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, catalog.ToResponse(j))
	}

	return responses, nil
}

// Tree implements catalog.CatalogService.
func (s *CatalogServiceImpl) Tree(ctx context.Context, projectType string) ([]catalog.JobTreeResponse, error) {
	jobs, err := s.JobRepository.List(ctx, projectType)
	if err != nil {
		return nil, err
	}

	var parents []catalog.JobTreeResponse
	index := make(map[string]int)
	for _, j := range jobs {
		if j.IsParent() {
			index[j.ID] = len(parents)
			parents = append(parents, catalog.JobTreeResponse{
				JobResponse: catalog.ToResponse(j),
				Children:    []catalog.JobResponse{},
			})
		}
	}
	for _, j := range jobs {
		if j.ParentID == nil {
			continue
		}
		if i, ok := index[*j.ParentID]; ok {
			parents[i].Children = append(parents[i].Children, catalog.ToResponse(j))
		}
	}

	return parents, nil
}
