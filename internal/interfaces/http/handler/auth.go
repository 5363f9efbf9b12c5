package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hisabat/backend/internal/application/identity"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	auth *identity.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *identity.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login authenticates a user and returns a session token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
