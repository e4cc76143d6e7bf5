package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/haneco/timesheet-backend-go/internal/domain/catalog"
	"github.com/haneco/timesheet-backend-go/internal/domain/project"
	"github.com/haneco/timesheet-backend-go/internal/domain/task"
	"github.com/haneco/timesheet-backend-go/internal/domain/user"
	"github.com/haneco/timesheet-backend-go/internal/pkg/database"
	"github.com/haneco/timesheet-backend-go/internal/pkg/notes"
	"github.com/haneco/timesheet-backend-go/internal/pkg/workhours"
	"github.com/haneco/timesheet-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type TaskServiceImpl struct {
	db *database.DB
	task.TaskRepository
	project.ProjectRepository
	catalog.JobRepository
	user.UserRepository
	calc workhours.Calculator
}

func NewTaskService(db *database.DB, taskRepository task.TaskRepository, projectRepository project.ProjectRepository, jobRepository catalog.JobRepository, userRepository user.UserRepository, calc workhours.Calculator) task.TaskService {
	return &TaskServiceImpl{
		db:                db,
		TaskRepository:    taskRepository,
		ProjectRepository: projectRepository,
		JobRepository:     jobRepository,
		UserRepository:    userRepository,
		calc:              calc,
	}
}

// Assign implements task.TaskService.
func (s *TaskServiceImpl) Assign(ctx context.Context, actorID string, req task.AssignTasksRequest) ([]task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	proj, err := s.ProjectRepository.GetByID(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return nil, task.ErrProjectNotFound
		}
		return nil, err
	}

	actor, err := s.UserRepository.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.CanManageProject(proj.Name) {
		return nil, task.ErrNotProjectOwner
	}

	rows := make([]task.Task, 0, len(req.Rows))
	for _, row := range req.Rows {
		job, err := s.JobRepository.GetByName(ctx, row.Task)
		if err != nil {
			if errors.Is(err, catalog.ErrJobNotFound) {
				return nil, task.ErrUnknownJob
			}
			return nil, err
		}

		if _, err := s.UserRepository.GetByUsername(ctx, row.Assignee); err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return nil, task.ErrAssigneeNotFound
			}
			return nil, err
		}

		t := task.Task{
			ID:        uuid.NewString(),
			ProjectID: proj.ID,
			Task:      job.Name,
			Assignee:  row.Assignee,
			Note:      row.Note,
		}
		if row.KhoiLuong != nil {
			t.KhoiLuong = *row.KhoiLuong
		}
		if row.Deadline != nil {
			deadline, err := time.Parse("2006-01-02", *row.Deadline)
			if err != nil {
				return nil, fmt.Errorf("failed to parse deadline: %w", err)
			}
			t.Deadline = &deadline
		}

		if job.IsDailyWage() && row.HasTimeRange() {
			span, err := workhours.ParseSpan(*row.StartDate, *row.EndDate, *row.StartTime, *row.EndTime)
			if err != nil {
				return nil, err
			}
			t.KhoiLuong = s.calc.Compute(span)
			t.Note = notes.Reinsert(notes.Annotation{
				StartTime: span.Start.String(),
				EndTime:   span.End.String(),
				DateToken: notes.FormatDateToken(span.StartDate, span.EndDate),
			}, row.Note)
		}

		rows = append(rows, t)
	}

	var created []task.Task
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		created, err = s.CreateBatch(txCtx, rows)
		return err
	})
	if err != nil {
		return nil, err
	}

	return toResponses(created), nil
}

// ListByProject implements task.TaskService.
func (s *TaskServiceImpl) ListByProject(ctx context.Context, projectID string) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return toResponses(tasks), nil
}

// ListByAssignee implements task.TaskService.
func (s *TaskServiceImpl) ListByAssignee(ctx context.Context, username string) ([]task.TaskResponse, error) {
	tasks, err := s.TaskRepository.ListByAssignee(ctx, username)
	if err != nil {
		return nil, err
	}
	return toResponses(tasks), nil
}

// GetByID implements task.TaskService.
func (s *TaskServiceImpl) GetByID(ctx context.Context, id string) (task.TaskResponse, error) {
	t, err := s.TaskRepository.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return task.ToResponse(t), nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.TaskRepository.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if req.KhoiLuong != nil {
		t.KhoiLuong = *req.KhoiLuong
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			return task.TaskResponse{}, fmt.Errorf("failed to parse deadline: %w", err)
		}
		t.Deadline = &deadline
	}
	if req.Progress != nil {
		t.Progress = *req.Progress
	}

	if req.Note != nil {
		t.Note = *req.Note

		job, err := s.JobRepository.GetByName(ctx, t.Task)
		if err != nil && !errors.Is(err, catalog.ErrJobNotFound) {
			return task.TaskResponse{}, err
		}
		if err == nil && job.IsDailyWage() {
			if recomputed, ok := s.recomputeFromNote(&t, *req.Note); !ok {
				slog.Warn("note has no usable time range, keeping quantity",
					slog.String("task_id", t.ID))
			} else {
				t = recomputed
			}
		}
	}

	updated, err := s.TaskRepository.Update(ctx, t)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(updated), nil
}

// recomputeFromNote re-extracts the time token from an edited note,
// recomputes the daily-wage hours, and reinserts a normalized token.
func (s *TaskServiceImpl) recomputeFromNote(t *task.Task, note string) (task.Task, bool) {
	ann, body := notes.Extract(note)
	if !ann.HasTimes() {
		return *t, false
	}

	startDate, endDate, ok := notes.ParseDateToken(ann.DateToken)
	if !ok {
		// No date range in the note: the hours span a single day.
		startDate = dateOnly(time.Now())
		endDate = startDate
		ann.DateToken = ""
	}

	start, ok := workhours.ParseTimeOfDay(ann.StartTime)
	if !ok {
		return *t, false
	}
	end, ok := workhours.ParseTimeOfDay(ann.EndTime)
	if !ok {
		return *t, false
	}

	result := *t
	result.KhoiLuong = s.calc.Compute(workhours.Span{
		StartDate: startDate,
		EndDate:   endDate,
		Start:     start,
		End:       end,
	})
	result.Note = notes.Reinsert(ann, body)
	return result, true
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	return s.TaskRepository.Delete(ctx, id)
}

// ProjectStats implements task.TaskService.
func (s *TaskServiceImpl) ProjectStats(ctx context.Context, projectID string) (task.ProgressStats, error) {
	return s.TaskRepository.ProjectStats(ctx, projectID)
}

// AssigneeStats implements task.TaskService.
func (s *TaskServiceImpl) AssigneeStats(ctx context.Context, username string) (task.ProgressStats, error) {
	return s.TaskRepository.AssigneeStats(ctx, username)
}

func toResponses(tasks []task.Task) []task.TaskResponse {
	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, task.ToResponse(t))
	}
	return responses
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
