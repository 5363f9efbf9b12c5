package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hisabat/backend/internal/domain/shared"
)

// Password cost for bcrypt
const bcryptCost = 12

const minPasswordLength = 8

// User is an application account. Capabilities gate which pages of the
// desktop client the user may open.
type User struct {
	ID           uuid.UUID
	Username     string
	DisplayName  string
	PasswordHash string
	Capabilities CapabilitySet
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user with a hashed password.
func NewUser(username, displayName, password string, caps CapabilitySet) (*User, error) {
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: hash,
		Capabilities: caps,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetPassword replaces the user's password (admin reset).
func (u *User) SetPassword(password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.UpdatedAt = time.Now()
	return nil
}

// Grant adds capabilities to the user.
func (u *User) Grant(caps ...Capability) {
	if u.Capabilities == nil {
		u.Capabilities = NewCapabilitySet()
	}
	for _, c := range caps {
		u.Capabilities[c] = struct{}{}
	}
	u.UpdatedAt = time.Now()
}

// Revoke removes capabilities from the user.
func (u *User) Revoke(caps ...Capability) {
	for _, c := range caps {
		delete(u.Capabilities, c)
	}
	u.UpdatedAt = time.Now()
}

// CanAccess reports whether the user may open the given page.
func (u *User) CanAccess(c Capability) bool {
	return u.Active && u.Capabilities.Allows(c)
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 8 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Repository persists users.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
