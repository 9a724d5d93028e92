package middleware

import (
	"net/http"

	"niryaat/services/access"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
)

// RequireCapability gates a route group behind the access policy table.
// The session's state is read at decision time, never captured earlier, so
// an approval granted mid-session takes effect on the next request.
func RequireCapability(policy *access.Policy, capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		mgr := SessionFromContext(c)
		if mgr == nil {
			utils.PolicyDecisions.WithLabelValues(string(capability), "redirect").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"redirectTo": access.TargetLogin})
			return
		}

		decision := policy.Evaluate(mgr.Current(), capability)
		if !decision.Allowed {
			utils.PolicyDecisions.WithLabelValues(string(capability), "redirect").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"redirectTo": decision.RedirectTo})
			return
		}

		utils.PolicyDecisions.WithLabelValues(string(capability), "allow").Inc()
		c.Next()
	}
}
