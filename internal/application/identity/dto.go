package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/hisabat/backend/internal/domain/identity"
)

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=1"`
}

// LoginResponse carries the issued session token and the user it belongs to
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

// CreateUserRequest represents a request to create a user account
type CreateUserRequest struct {
	Username     string   `json:"username" binding:"required,min=1,max=100"`
	DisplayName  string   `json:"display_name" binding:"max=200"`
	Password     string   `json:"password" binding:"required,min=8"`
	Capabilities []string `json:"capabilities"`
}

// UpdateUserRequest represents a partial update to a user account
type UpdateUserRequest struct {
	DisplayName  *string   `json:"display_name" binding:"omitempty,max=200"`
	Capabilities *[]string `json:"capabilities"`
	Active       *bool     `json:"active"`
}

// SetPasswordRequest represents an admin password reset
type SetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"display_name"`
	Capabilities []string  `json:"capabilities"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func userResponse(u *identity.User) *UserResponse {
	caps := u.Capabilities.List()
	capStrings := make([]string, len(caps))
	for i, c := range caps {
		capStrings[i] = string(c)
	}
	return &UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		DisplayName:  u.DisplayName,
		Capabilities: capStrings,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func capabilitySet(raw []string) identity.CapabilitySet {
	caps := make([]identity.Capability, len(raw))
	for i, s := range raw {
		caps[i] = identity.Capability(s)
	}
	return identity.NewCapabilitySet(caps...)
}
