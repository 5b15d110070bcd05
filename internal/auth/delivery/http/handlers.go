package http

import (
	"github.com/gin-gonic/gin"

	"shared-task-tracker/internal/middleware"
	"shared-task-tracker/pkg/response"
)

// Login checks credentials and returns a session token.
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput(c.ClientIP()))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newLoginResp(output))
}

// Logout revokes the caller's session.
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx, middleware.GetSessionToken(c)); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"logged_out": true})
}

// SetRemoteToken attaches a remote write token to the caller's session.
func (h *handler) SetRemoteToken(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRemoteTokenReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SetRemoteToken(ctx, middleware.GetSessionToken(c), req.RemoteToken); err != nil {
		h.l.Errorf(ctx, "uc.SetRemoteToken: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"updated": true})
}
