package middleware

import (
	"net/http"
	"strings"

	"niryaat/services/session"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
)

const (
	// ContextSessionKey is the gin context key holding the session manager.
	ContextSessionKey = "session"
	// ContextAccountIDKey is the gin context key holding the account ID.
	ContextAccountIDKey = "accountID"
	// ContextSessionIDKey is the gin context key holding the session ID.
	ContextSessionIDKey = "sessionID"
)

// SessionAuthMiddleware validates the bearer token and attaches the live
// session manager to the request context, rehydrating it from the Redis
// session record when the process has restarted since sign-in.
func SessionAuthMiddleware(registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		accountID, sessionID, err := utils.ExtractSessionClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		mgr := registry.Get(sessionID)
		if mgr == nil {
			record, err := utils.GetSessionRecord(utils.GetSessionCacheClient(), sessionID)
			if err != nil || record == nil || record.AccountID != accountID {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
				return
			}
			mgr, err = registry.Rehydrate(sessionID, accountID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
				return
			}
		}

		if !mgr.Current().State.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not signed in"})
			return
		}

		c.Set(ContextSessionKey, mgr)
		c.Set(ContextAccountIDKey, accountID)
		c.Set(ContextSessionIDKey, sessionID)
		c.Next()
	}
}

// SessionFromContext returns the session manager attached by
// SessionAuthMiddleware, or nil.
func SessionFromContext(c *gin.Context) *session.Manager {
	v, ok := c.Get(ContextSessionKey)
	if !ok {
		return nil
	}
	mgr, _ := v.(*session.Manager)
	return mgr
}
