package http

import (
	"time"

	"shared-task-tracker/internal/auth"
)

// --- Request DTOs ---

type loginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput(ip string) auth.LoginInput {
	return auth.LoginInput{
		Username: r.Username,
		Password: r.Password,
		IP:       ip,
	}
}

type remoteTokenReq struct {
	// RemoteToken may be empty to clear a previously set token.
	RemoteToken string `json:"remote_token"`
}

// --- Response DTOs ---

type loginResp struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
}

func newLoginResp(out auth.LoginOutput) loginResp {
	return loginResp{
		Token:     out.Token,
		Username:  out.Username,
		ExpiresAt: out.ExpiresAt,
	}
}
