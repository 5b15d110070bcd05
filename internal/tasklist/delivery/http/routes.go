package http

import (
	"github.com/gin-gonic/gin"

	"shared-task-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", mw.Auth(), h.Create)
		tasks.GET("", mw.Auth(), h.List)
		tasks.PUT("/:id/done", mw.Auth(), h.SetDone)
		tasks.GET("/reminders", mw.Auth(), h.Reminders)
		tasks.GET("/earnings", mw.Auth(), h.Earnings)
		tasks.GET("/export", mw.Auth(), h.Export)
		tasks.POST("/reload", mw.Auth(), h.Reload)
		tasks.POST("/push", mw.Auth(), h.Push)
	}

	rg.GET("/today", mw.Auth(), h.Today)
}
