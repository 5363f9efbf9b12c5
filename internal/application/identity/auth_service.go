package identity

import (
	"context"
	"errors"

	"github.com/hisabat/backend/internal/domain/identity"
	"github.com/hisabat/backend/internal/domain/shared"
	"github.com/hisabat/backend/internal/infrastructure/auth"
)

// AuthService authenticates users and issues session tokens
type AuthService struct {
	users identity.Repository
	jwt   *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users identity.Repository, jwt *auth.JWTService) *AuthService {
	return &AuthService{users: users, jwt: jwt}
}

// Login verifies credentials and issues a JWT. Unknown usernames and wrong
// passwords return the same error so the response never leaks which one it was.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
		}
		return nil, err
	}
	if !user.Active {
		return nil, shared.NewDomainError("ACCOUNT_DISABLED", "Account is disabled")
	}
	if !user.VerifyPassword(req.Password) {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	token, err := s.jwt.Generate(user)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
		User:        userResponse(user),
	}, nil
}
