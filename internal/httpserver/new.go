package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	authHTTP "shared-task-tracker/internal/auth/delivery/http"
	"shared-task-tracker/internal/middleware"
	tasklistHTTP "shared-task-tracker/internal/tasklist/delivery/http"
	pkgLog "shared-task-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	mw              middleware.Middleware
	authHandler     authHTTP.Handler
	tasklistHandler tasklistHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware      middleware.Middleware
	AuthHandler     authHTTP.Handler
	TasklistHandler tasklistHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		authHandler:     cfg.AuthHandler,
		tasklistHandler: cfg.TasklistHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authHandler == nil {
		return errors.New("auth handler is required")
	}
	if srv.tasklistHandler == nil {
		return errors.New("tasklist handler is required")
	}
	return nil
}
