package http

import (
	"github.com/gin-gonic/gin"

	"shared-task-tracker/internal/auth"
	pkgLog "shared-task-tracker/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	SetRemoteToken(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc auth.UseCase
}

// New creates a new HTTP handler for the auth domain.
func New(l pkgLog.Logger, uc auth.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
