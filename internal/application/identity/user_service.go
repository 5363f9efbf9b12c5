package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hisabat/backend/internal/domain/identity"
	"github.com/hisabat/backend/internal/domain/shared"
)

// UserService handles user account administration
type UserService struct {
	users identity.Repository
}

// NewUserService creates a new UserService
func NewUserService(users identity.Repository) *UserService {
	return &UserService{users: users}
}

// Create creates a new user account
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Username is already taken")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(req.Username, req.DisplayName, req.Password, capabilitySet(req.Capabilities))
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

// Get returns a single user
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

// List returns all users
func (s *UserService) List(ctx context.Context) ([]*UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*UserResponse, len(users))
	for i, u := range users {
		out[i] = userResponse(u)
	}
	return out, nil
}

// Update applies a partial update to a user account
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Capabilities != nil {
		user.Capabilities = capabilitySet(*req.Capabilities)
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return userResponse(user), nil
}

// SetPassword resets a user's password
func (s *UserService) SetPassword(ctx context.Context, id uuid.UUID, req SetPasswordRequest) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := user.SetPassword(req.Password); err != nil {
		return err
	}
	return s.users.Save(ctx, user)
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}
