package middleware

import (
	"net/http"

	"bloghub/internal/api/respond"
	"bloghub/internal/api/service"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the httpOnly cookie carrying the signed session token.
const SessionCookie = "jwt"

// ContextUserID is the gin context key the guard sets for handlers.
const ContextUserID = "userID"

// SessionGuard is the request-level authentication gate. Public endpoints
// are registered on an unguarded route group instead of being marked on the
// handler, so everything passing through here must present a valid cookie.
func SessionGuard(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			respond.Error(c, http.StatusUnauthorized, "JWT token is missing")
			return
		}

		claims, err := authService.ValidateToken(cookie)
		if err != nil {
			respond.Error(c, http.StatusUnauthorized, "Invalid or expired JWT token")
			return
		}

		// Set identity in context for handlers to use
		c.Set(ContextUserID, claims.UserID)

		c.Next()
	}
}

// UserID extracts the authenticated user id set by the guard.
func UserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return "", false
	}
	id, ok := value.(string)
	return id, ok && id != ""
}
