package middleware

import (
	"shared-task-tracker/internal/auth"
	pkgLog "shared-task-tracker/pkg/log"
)

type Middleware struct {
	l      pkgLog.Logger
	authUC auth.UseCase
}

func New(l pkgLog.Logger, authUC auth.UseCase) Middleware {
	return Middleware{
		l:      l,
		authUC: authUC,
	}
}
