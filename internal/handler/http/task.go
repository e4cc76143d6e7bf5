package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/haneco/timesheet-backend-go/internal/domain/task"
	"github.com/haneco/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/haneco/timesheet-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	Assign(w http.ResponseWriter, r *http.Request)
	ListByProject(w http.ResponseWriter, r *http.Request)
	ListByAssignee(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ProjectStats(w http.ResponseWriter, r *http.Request)
	AssigneeStats(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// Assign implements TaskHandler.
func (h *TaskHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req task.AssignTasksRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.taskService.Assign(r.Context(), middleware.UserID(r), req)
	if err != nil {
		slog.Error("Assign tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Tasks assigned", created)
}

// ListByProject implements TaskHandler.
func (h *TaskHandlerImpl) ListByProject(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListByProject(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		slog.Error("List tasks by project service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// ListByAssignee implements TaskHandler.
func (h *TaskHandlerImpl) ListByAssignee(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListByAssignee(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		slog.Error("List tasks by assignee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// ListMine implements TaskHandler.
func (h *TaskHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListByAssignee(r.Context(), middleware.Username(r))
	if err != nil {
		slog.Error("List own tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// GetByID implements TaskHandler.
func (h *TaskHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	t, err := h.taskService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}

// Update implements TaskHandler.
func (h *TaskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.taskService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// Delete implements TaskHandler.
func (h *TaskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted", nil)
}

// ProjectStats implements TaskHandler.
func (h *TaskHandlerImpl) ProjectStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.taskService.ProjectStats(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		slog.Error("Project stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// AssigneeStats implements TaskHandler.
func (h *TaskHandlerImpl) AssigneeStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.taskService.AssigneeStats(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		slog.Error("Assignee stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
