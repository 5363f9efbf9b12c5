package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabat/backend/internal/domain/identity"
	"github.com/hisabat/backend/internal/infrastructure/auth"
	"github.com/hisabat/backend/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		Expiration: time.Hour,
		Issuer:     "hisabat-test",
	})
}

func newToken(t *testing.T, jwtService *auth.JWTService, caps ...identity.Capability) string {
	t.Helper()
	user, err := identity.NewUser("amira", "Amira", "s3cret-pass", identity.NewCapabilitySet(caps...))
	require.NoError(t, err)
	token, err := jwtService.Generate(user)
	require.NoError(t, err)
	return token.AccessToken
}

func protectedRouter(jwtService *auth.JWTService, capability identity.Capability) *gin.Engine {
	r := gin.New()
	r.GET("/reports", JWTAuth(jwtService), RequireCapability(capability), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuth(t *testing.T) {
	jwtService := newJWTService(t)
	r := protectedRouter(jwtService, identity.CapReports)

	t.Run("missing token is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+"not-a-token")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token with capability passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+newToken(t, jwtService, identity.CapReports))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireCapability(t *testing.T) {
	jwtService := newJWTService(t)
	r := protectedRouter(jwtService, identity.CapReports)

	t.Run("missing capability is forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+newToken(t, jwtService, identity.CapSales))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wildcard grant passes every gate", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/reports", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+newToken(t, jwtService, identity.All))
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestValidSelector(t *testing.T) {
	require.NoError(t, RegisterValidators())

	type query struct {
		Selector string `form:"selector" binding:"omitempty,selector"`
	}

	r := gin.New()
	r.GET("/q", func(c *gin.Context) {
		var q query
		if err := c.ShouldBindQuery(&q); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		selector string
		want     int
	}{
		{"", http.StatusOK},
		{"category:food", http.StatusOK},
		{"product:abc-123", http.StatusOK},
		{"category:", http.StatusBadRequest},
		{"bogus", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run("selector="+tt.selector, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/q?selector="+tt.selector, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
