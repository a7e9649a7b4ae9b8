package middlewares

import (
	"crs/src/types"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Authorize is the single policy decision point for role-gated
// operations: the caller's role must match the required role exactly.
func Authorize(callerRole, requiredRole types.Role) bool {
	return callerRole == requiredRole
}

// RequireRole aborts with 403 unless the authenticated caller holds the
// given role. It must run after AuthMiddleware.
func RequireRole(role types.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		callerRole := types.Role(ctx.GetString("role"))
		if !Authorize(callerRole, role) {
			msg := "Admin access required"
			if role != types.ROLE_ADMIN {
				msg = fmt.Sprintf("%s access required", role)
			}
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msg})
			return
		}
	}
}
