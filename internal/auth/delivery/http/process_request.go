package http

import (
	"github.com/gin-gonic/gin"
)

// processLoginReq binds and validates the login request body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRemoteTokenReq binds the remote token request body.
func (h *handler) processRemoteTokenReq(c *gin.Context) (remoteTokenReq, error) {
	var req remoteTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
