package http

import (
	"errors"

	"shared-task-tracker/internal/tasklist"
	"shared-task-tracker/internal/tasklist/repository"
	"shared-task-tracker/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, tasklist.ErrNameRequired),
		errors.Is(err, tasklist.ErrDeadlineRequired),
		errors.Is(err, tasklist.ErrUnknownOwner):
		return response.NewHTTPError(400, err.Error())
	case errors.Is(err, tasklist.ErrTaskNotFound):
		return response.NewHTTPError(404, "task not found")
	case errors.Is(err, tasklist.ErrLocalEdits):
		return response.NewHTTPError(409, "unsaved local edits exist; retry with force")
	case errors.Is(err, tasklist.ErrReadOnlySource):
		return response.NewHTTPError(400, "the configured source does not support writing")
	case errors.Is(err, repository.ErrTokenRequired):
		return response.NewHTTPError(401, "a remote write token is required; set one for this session first")
	case errors.Is(err, repository.ErrSaveConflict):
		return response.NewHTTPError(409, "remote file changed underneath us; reload and push again")
	default:
		return response.NewHTTPError(502, "remote source unavailable")
	}
}
