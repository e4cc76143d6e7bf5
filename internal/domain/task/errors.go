package task

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrUnknownJob       = errors.New("job not in catalog")
	ErrAssigneeNotFound = errors.New("assignee not found")
	ErrNotProjectOwner  = errors.New("not a manager of this project")
)
