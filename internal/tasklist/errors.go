package tasklist

import "errors"

// Domain-specific errors for the task list.
var (
	ErrNameRequired     = errors.New("task name is required")
	ErrDeadlineRequired = errors.New("task deadline is required")
	ErrUnknownOwner     = errors.New("owner is not one of the configured users")
	ErrTaskNotFound     = errors.New("task not found")
	ErrReadOnlySource   = errors.New("configured remote source does not support saving")
	ErrLocalEdits       = errors.New("reload skipped: unsaved local edits present")
)
