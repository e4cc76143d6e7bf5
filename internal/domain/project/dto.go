package project

import (
	"github.com/haneco/timesheet-backend-go/internal/pkg/validator"
)

type ProjectResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Deadline    *string `json:"deadline,omitempty"`
	ProjectType string  `json:"project_type"`
	DesignStep  string  `json:"design_step,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Deadline    *string `json:"deadline,omitempty"`
	ProjectType string  `json:"project_type"`
	DesignStep  string  `json:"design_step,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
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

	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be in YYYY-MM-DD format",
			})
		}
	}

	if validator.IsEmpty(r.ProjectType) {
		errs = append(errs, validator.ValidationError{
			Field:   "project_type",
			Message: "project_type is required",
		})
	} else if !validator.IsInSlice(r.ProjectType, []string{string(TypePublic), string(TypeGroup)}) {
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

type UpdateProjectRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
	ProjectType *string `json:"project_type,omitempty"`
	DesignStep  *string `json:"design_step,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
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

	if r.Deadline != nil {
		if _, ok := validator.IsValidDate(*r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be in YYYY-MM-DD format",
			})
		}
	}

	if r.ProjectType != nil {
		if !validator.IsInSlice(*r.ProjectType, []string{string(TypePublic), string(TypeGroup)}) {
			errs = append(errs, validator.ValidationError{
				Field:   "project_type",
				Message: "project_type must be public or group",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse converts a Project entity into its API shape.
func ToResponse(p Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		ProjectType: string(p.ProjectType),
		DesignStep:  p.DesignStep,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if p.Deadline != nil {
		d := p.Deadline.Format("2006-01-02")
		resp.Deadline = &d
	}
	return resp
}
