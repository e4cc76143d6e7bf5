package project

import "errors"

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrProjectNameTaken = errors.New("project name already exists")
	ErrProjectHasTasks  = errors.New("project still has assigned tasks")
)
