package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"shared-task-tracker/internal/model"
	"shared-task-tracker/pkg/response"
)

const (
	scopeKey        = "scope"
	sessionTokenKey = "session_token"
)

// Auth requires a valid session token in the Authorization header
// ("Bearer <token>") and stores the resolved scope plus the raw token in
// the request context for downstream handlers.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.authUC.Verify(c.Request.Context(), token)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "Auth: rejected token: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Set(sessionTokenKey, token)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// GetScope returns the authenticated user's scope set by Auth.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}

// GetSessionToken returns the raw session token set by Auth.
func GetSessionToken(c *gin.Context) string {
	return c.GetString(sessionTokenKey)
}
