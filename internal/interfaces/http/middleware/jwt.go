package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hisabat/backend/internal/infrastructure/auth"
	"github.com/hisabat/backend/internal/interfaces/http/dto"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTAuth verifies the bearer token on every request and stores the parsed
// claims in the gin context for the permission gate and handlers.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" || !strings.HasPrefix(header, BearerPrefix) {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		claims, err := jwtService.Verify(strings.TrimPrefix(header, BearerPrefix))
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired")
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Next()
	}
}

// GetJWTClaims returns the claims stored by JWTAuth, or nil when the request
// was not authenticated.
func GetJWTClaims(c *gin.Context) *auth.Claims {
	value, exists := c.Get(JWTClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}
