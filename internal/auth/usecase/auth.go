package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"shared-task-tracker/internal/auth"
	"shared-task-tracker/internal/model"
)

// Login checks the credentials and mints a session token.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	if !uc.allowAttempt(input.IP) {
		uc.l.Warnf(ctx, "Login: throttled attempt from %s", input.IP)
		return auth.LoginOutput{}, auth.ErrTooManyAttempts
	}

	hash, ok := uc.users[input.Username]
	if !ok {
		// Burn a comparison anyway so unknown usernames cost the same.
		bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(input.Password))
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		uc.l.Warnf(ctx, "Login: failed attempt for %q from %s", input.Username, input.IP)
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	token := uuid.NewString()
	uc.sessions.Add(token, &session{username: input.Username})
	uc.l.Infof(ctx, "Login: session opened for %q", input.Username)

	return auth.LoginOutput{
		Token:     token,
		Username:  input.Username,
		ExpiresAt: uc.now().Add(uc.sessionTTL),
	}, nil
}

// Logout revokes a session token.
func (uc *implUseCase) Logout(ctx context.Context, token string) error {
	if sess, ok := uc.sessions.Get(token); ok {
		uc.l.Infof(ctx, "Logout: session closed for %q", sess.username)
	}
	uc.sessions.Remove(token)
	return nil
}

// Verify resolves a session token to the calling user's scope.
func (uc *implUseCase) Verify(ctx context.Context, token string) (model.Scope, error) {
	sess, ok := uc.sessions.Get(token)
	if !ok {
		return model.Scope{}, auth.ErrSessionNotFound
	}
	return model.Scope{Username: sess.username}, nil
}

// SetRemoteToken attaches a remote write token to the session.
func (uc *implUseCase) SetRemoteToken(ctx context.Context, token string, remoteToken string) error {
	sess, ok := uc.sessions.Get(token)
	if !ok {
		return auth.ErrSessionNotFound
	}

	sess.mu.Lock()
	sess.remoteToken = remoteToken
	sess.mu.Unlock()

	uc.l.Infof(ctx, "SetRemoteToken: remote token updated for %q", sess.username)
	return nil
}

// RemoteToken returns the remote write token attached to the session.
func (uc *implUseCase) RemoteToken(ctx context.Context, token string) (string, error) {
	sess, ok := uc.sessions.Get(token)
	if !ok {
		return "", auth.ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.remoteToken, nil
}

// allowAttempt enforces the per-IP login rate. Each IP gets its own
// limiter; idle limiters age out of the cache.
func (uc *implUseCase) allowAttempt(ip string) bool {
	if ip == "" {
		ip = "unknown"
	}
	limiter, ok := uc.limiters.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(uc.loginRate, 3)
		uc.limiters.Add(ip, limiter)
	}
	return limiter.Allow()
}
