package http

import (
	"github.com/gin-gonic/gin"

	"shared-task-tracker/internal/auth"
	"shared-task-tracker/internal/tasklist"
	pkgLog "shared-task-tracker/pkg/log"
)

// Handler is the public interface for the task list HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	SetDone(c *gin.Context)
	List(c *gin.Context)
	Reminders(c *gin.Context)
	Earnings(c *gin.Context)
	Export(c *gin.Context)
	Reload(c *gin.Context)
	Push(c *gin.Context)
	Today(c *gin.Context)
}

type handler struct {
	l      pkgLog.Logger
	uc     tasklist.UseCase
	authUC auth.UseCase
}

// New creates a new HTTP handler for the task list domain. authUC is
// needed to resolve the session-scoped remote write token for pushes.
func New(l pkgLog.Logger, uc tasklist.UseCase, authUC auth.UseCase) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		authUC: authUC,
	}
}
