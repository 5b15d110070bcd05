package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "shared-task-tracker/internal/auth/delivery/http"
	tasklistHTTP "shared-task-tracker/internal/tasklist/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	authHTTP.RegisterRoutes(api, srv.authHandler, srv.mw)
	srv.l.Infof(ctx, "Auth domain registered")

	tasklistHTTP.RegisterRoutes(api, srv.tasklistHandler, srv.mw)
	srv.l.Infof(ctx, "Task list domain registered")
}
