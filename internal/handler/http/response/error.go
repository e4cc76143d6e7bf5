package response

import (
	"errors"
	"net/http"

	"github.com/haneco/timesheet-backend-go/internal/domain/attendance"
	"github.com/haneco/timesheet-backend-go/internal/domain/auth"
	"github.com/haneco/timesheet-backend-go/internal/domain/catalog"
	"github.com/haneco/timesheet-backend-go/internal/domain/project"
	"github.com/haneco/timesheet-backend-go/internal/domain/task"
	"github.com/haneco/timesheet-backend-go/internal/domain/user"
	"github.com/haneco/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrOAuthAccountUnknown):
		Forbidden(w, "No account linked to this Google email")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already registered")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, "Invalid role", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrCannotDeleteLastAdmin):
		Conflict(w, "Cannot remove the last admin account")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectNameTaken):
		Conflict(w, "Project name already exists")
	case errors.Is(err, project.ErrProjectHasTasks):
		Conflict(w, "Project still has assigned tasks")

	// Job catalog errors
	case errors.Is(err, catalog.ErrJobNotFound):
		NotFound(w, "Job not found")
	case errors.Is(err, catalog.ErrJobNameTaken):
		Conflict(w, "Job name already exists")
	case errors.Is(err, catalog.ErrJobHasChildren):
		Conflict(w, "Job still has child jobs")
	case errors.Is(err, catalog.ErrParentNotFound):
		BadRequest(w, "Parent job not found", nil)
	case errors.Is(err, catalog.ErrNestedParent):
		BadRequest(w, "Parent job must be top-level", nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, task.ErrUnknownJob):
		BadRequest(w, "Job not in catalog", nil)
	case errors.Is(err, task.ErrAssigneeNotFound):
		BadRequest(w, "Assignee not found", nil)
	case errors.Is(err, task.ErrNotProjectOwner):
		Forbidden(w, "Not a manager of this project")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrLedgerNotFound):
		NotFound(w, "Attendance row not found")
	case errors.Is(err, attendance.ErrInvalidMonth):
		BadRequest(w, "Month must be in YYYY-MM format", nil)

	default:
		InternalServerError(w, "Internal server error")
	}
}
