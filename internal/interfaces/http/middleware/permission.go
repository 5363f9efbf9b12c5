package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hisabat/backend/internal/domain/identity"
	"github.com/hisabat/backend/internal/interfaces/http/dto"
)

// RequireCapability gates a route group on one capability. The check runs
// against the capability set carried in the JWT, so a token issued before a
// grant change keeps its old rights until it expires.
func RequireCapability(capability identity.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
			return
		}

		if !claims.CapabilitySet().Allows(capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(dto.ErrCodeForbidden, "Missing required capability"))
			return
		}

		c.Next()
	}
}
