package catalog

import (
	"github.com/haneco/timesheet-backend-go/internal/pkg/validator"
)

type JobResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	ProjectType string  `json:"project_type"`
	DailyWage   bool    `json:"daily_wage"`
}

// JobTreeResponse is a parent job with its children, the shape the
// assignment screens consume.
type JobTreeResponse struct {
	JobResponse
	Children []JobResponse `json:"children"`
}

type CreateJobRequest struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	ProjectType string  `json:"project_type,omitempty"`
}

func (r *CreateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(r.Unit) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "unit",
			Message: "unit must not exceed 50 characters",
		})
	}

	if r.ParentID != nil && validator.IsEmpty(*r.ParentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "parent_id",
			Message: "parent_id must not be empty",
		})
	}

	if !validator.IsEmpty(r.ProjectType) &&
		!validator.IsInSlice(r.ProjectType, []string{"public", "group"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_type",
			Message: "project_type must be public or group",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateJobRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Unit        *string `json:"unit,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	ProjectType *string `json:"project_type,omitempty"`
}

func (r *UpdateJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		} else if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if r.Unit != nil && len(*r.Unit) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "unit",
			Message: "unit must not exceed 50 characters",
		})
	}

	if r.ProjectType != nil &&
		!validator.IsInSlice(*r.ProjectType, []string{"public", "group"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_type",
			Message: "project_type must be public or group",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse converts a Job entity into its API shape.
func ToResponse(j Job) JobResponse {
	return JobResponse{
		ID:          j.ID,
		Name:        j.Name,
		Unit:        j.Unit,
		ParentID:    j.ParentID,
		ProjectType: j.ProjectType,
		DailyWage:   j.IsDailyWage(),
	}
}
