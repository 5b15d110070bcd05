package http

import (
	"errors"

	"shared-task-tracker/internal/auth"
	"shared-task-tracker/pkg/response"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return response.NewHTTPError(401, "invalid username or password")
	case errors.Is(err, auth.ErrTooManyAttempts):
		return response.NewHTTPError(429, "too many login attempts, slow down")
	case errors.Is(err, auth.ErrSessionNotFound):
		return response.NewHTTPError(401, "session not found or expired")
	default:
		return response.NewHTTPError(400, err.Error())
	}
}
