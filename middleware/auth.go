package middleware

import (
	"net/http"
	"strings"

	"courtside/models"
	"courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the authenticated actor's
// models.Session.
const SessionKey = "session"

// JWTAuthMiddleware validates the bearer token and attaches the actor's
// session to the request context. The session is rebuilt from the account on
// every request so role changes take effect without re-login.
func JWTAuthMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, _, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		session, err := userSvc.SessionFor(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches a session when a valid token is present and
// a guest session otherwise. Read endpoints use it so anonymous browsing of
// coaches and availability keeps working.
func OptionalAuthMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if userID, _, err := utils.ExtractClaimsFromToken(tokenString); err == nil {
				if session, err := userSvc.SessionFor(c.Request.Context(), userID); err == nil {
					c.Set(SessionKey, session)
					c.Next()
					return
				}
			}
		}
		c.Set(SessionKey, models.Session{Role: models.RoleGuest})
		c.Next()
	}
}

// GetSession returns the session set by the auth middleware, defaulting to a
// guest session when absent.
func GetSession(c *gin.Context) models.Session {
	if v, exists := c.Get(SessionKey); exists {
		if session, ok := v.(models.Session); ok {
			return session
		}
	}
	return models.Session{Role: models.RoleGuest}
}
