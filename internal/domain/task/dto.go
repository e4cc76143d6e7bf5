package task

import (
	"strconv"

	"github.com/haneco/timesheet-backend-go/internal/pkg/validator"
)

type TaskResponse struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"project_id"`
	Task      string  `json:"task"`
	Assignee  string  `json:"assignee"`
	KhoiLuong float64 `json:"khoi_luong"`
	Deadline  *string `json:"deadline,omitempty"`
	Note      string  `json:"note,omitempty"`
	Progress  int     `json:"progress"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// AssignTaskRow is one row of a bulk assignment. For daily-wage jobs the
// quantity is derived from the date/time range and the range is stamped
// into the note; for everything else KhoiLuong is taken as entered.
type AssignTaskRow struct {
	Task      string   `json:"task"`
	Assignee  string   `json:"assignee"`
	KhoiLuong *float64 `json:"khoi_luong,omitempty"`
	Deadline  *string  `json:"deadline,omitempty"`
	Note      string   `json:"note,omitempty"`
	StartDate *string  `json:"start_date,omitempty"`
	EndDate   *string  `json:"end_date,omitempty"`
	StartTime *string  `json:"start_time,omitempty"`
	EndTime   *string  `json:"end_time,omitempty"`
}

// HasTimeRange reports whether the row carries a complete date/time range.
func (r *AssignTaskRow) HasTimeRange() bool {
	return r.StartDate != nil && r.EndDate != nil && r.StartTime != nil && r.EndTime != nil
}

type AssignTasksRequest struct {
	ProjectID string          `json:"project_id"`
	Rows      []AssignTaskRow `json:"rows"`
}

func (r *AssignTasksRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_id",
			Message: "project_id is required",
		})
	}

	if len(r.Rows) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rows",
			Message: "at least one row is required",
		})
	}

	for i, row := range r.Rows {
		prefix := "rows[" + strconv.Itoa(i) + "]."

		if validator.IsEmpty(row.Task) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "task",
				Message: "task is required",
			})
		}
		if validator.IsEmpty(row.Assignee) {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "assignee",
				Message: "assignee is required",
			})
		}
		if row.KhoiLuong != nil && *row.KhoiLuong < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   prefix + "khoi_luong",
				Message: "khoi_luong must not be negative",
			})
		}
		if row.Deadline != nil {
			if _, ok := validator.IsValidDate(*row.Deadline); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + "deadline",
					Message: "deadline must be in YYYY-MM-DD format",
				})
			}
		}
		if row.StartDate != nil {
			if _, ok := validator.IsValidDate(*row.StartDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + "start_date",
					Message: "start_date must be in YYYY-MM-DD format",
				})
			}
		}
		if row.EndDate != nil {
			if _, ok := validator.IsValidDate(*row.EndDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + "end_date",
					Message: "end_date must be in YYYY-MM-DD format",
				})
			}
		}
		if row.StartTime != nil {
			if _, ok := validator.IsValidClock(*row.StartTime); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + "start_time",
					Message: "start_time must be in HH:MM format",
				})
			}
		}
		if row.EndTime != nil {
			if _, ok := validator.IsValidClock(*row.EndTime); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   prefix + "end_time",
					Message: "end_time must be in HH:MM format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTaskRequest struct {
	ID        string   `json:"id"`
	KhoiLuong *float64 `json:"khoi_luong,omitempty"`
	Deadline  *string  `json:"deadline,omitempty"`
	Note      *string  `json:"note,omitempty"`
	Progress  *int     `json:"progress,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.KhoiLuong != nil && *r.KhoiLuong < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "khoi_luong",
			Message: "khoi_luong must not be negative",
		})
	}

	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Progress != nil && (*r.Progress < 0 || *r.Progress > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "progress",
			Message: "progress must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse converts a Task entity into its API shape.
func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:        t.ID,
		ProjectID: t.ProjectID,
		Task:      t.Task,
		Assignee:  t.Assignee,
		KhoiLuong: t.KhoiLuong,
		Note:      t.Note,
		Progress:  t.Progress,
		CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: t.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if t.Deadline != nil {
		d := t.Deadline.Format("2006-01-02")
		resp.Deadline = &d
	}
	return resp
}
