package auth

import (
	"context"

	"shared-task-tracker/internal/model"
)

// UseCase defines the business logic interface for the auth domain.
// Sessions are opaque bearer tokens held in memory; a restart logs
// everyone out.
type UseCase interface {
	// Login checks the credentials and mints a session token. Attempts
	// are throttled per client IP.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// Logout revokes a session token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error

	// Verify resolves a session token to the calling user's scope.
	Verify(ctx context.Context, token string) (model.Scope, error)

	// SetRemoteToken attaches a remote write token (e.g. a GitHub token)
	// to the session. It lives and dies with the session and is never
	// persisted.
	SetRemoteToken(ctx context.Context, token string, remoteToken string) error

	// RemoteToken returns the remote write token attached to the session,
	// or empty when none was set.
	RemoteToken(ctx context.Context, token string) (string, error)
}
