package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smartsolar/backend/internal/application/dashboard"
	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/interfaces/http/dto"
)

const (
	// SessionKey is the gin context key holding the authorized session
	SessionKey = "session"
	// SessionTokenKey is the gin context key holding the raw bearer token
	SessionTokenKey = "session_token"
)

// AdminSession returns a middleware that requires a bearer token backed
// by a live admin session. Anything else is rejected before the handler
// runs; a valid session for a non-admin account is terminated by the
// gate itself.
func AdminSession(gate *dashboard.SessionGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Missing or malformed authorization header"))
			return
		}

		session, ok := gate.Authorize(c.Request.Context(), token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Access denied. Only administrators can access this panel."))
			return
		}

		c.Set(SessionKey, session)
		c.Set(SessionTokenKey, token)
		c.Next()
	}
}

// GetSession retrieves the authorized session from gin context
func GetSession(c *gin.Context) (*document.Session, bool) {
	v, exists := c.Get(SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := v.(*document.Session)
	return session, ok
}

// GetSessionToken retrieves the raw bearer token from gin context
func GetSessionToken(c *gin.Context) string {
	return c.GetString(SessionTokenKey)
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
