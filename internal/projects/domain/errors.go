package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNoProjects      = errors.New("no projects available")
	ErrInvalidProgress = errors.New("invalid progress value")
)
