package catalog

import "errors"

var (
	ErrJobNotFound    = errors.New("job not found")
	ErrJobNameTaken   = errors.New("job name already exists")
	ErrJobHasChildren = errors.New("job still has child jobs")
	ErrParentNotFound = errors.New("parent job not found")
	ErrNestedParent   = errors.New("parent job must be top-level")
)
