package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hisabat/backend/internal/domain/identity"
	"github.com/hisabat/backend/internal/domain/shared"
	"github.com/hisabat/backend/internal/infrastructure/auth"
	"github.com/hisabat/backend/internal/infrastructure/config"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*identity.User
}

func newFakeUserRepo(users ...*identity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*identity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*identity.User, error) {
	out := make([]*identity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Save(ctx context.Context, user *identity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func testJWT() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		Expiration: time.Hour,
		Issuer:     "hisabat-test",
	})
}

func TestAuthService_Login(t *testing.T) {
	user, err := identity.NewUser("amira", "Amira", "s3cret-pass", identity.NewCapabilitySet(identity.CapReports))
	require.NoError(t, err)
	jwtSvc := testJWT()
	svc := NewAuthService(newFakeUserRepo(user), jwtSvc)

	t.Run("valid credentials issue a verifiable token", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), LoginRequest{Username: "amira", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, "amira", resp.User.Username)

		claims, err := jwtSvc.Verify(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.True(t, claims.CapabilitySet().Allows(identity.CapReports))
	})

	t.Run("wrong password and unknown user return the same code", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginRequest{Username: "amira", Password: "wrong-pass"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)

		_, err = svc.Login(context.Background(), LoginRequest{Username: "nobody", Password: "whatever1"})
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	})

	t.Run("disabled account cannot log in", func(t *testing.T) {
		user.Active = false
		defer func() { user.Active = true }()

		_, err := svc.Login(context.Background(), LoginRequest{Username: "amira", Password: "s3cret-pass"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_DISABLED", domainErr.Code)
	})
}

func TestUserService_CreateRejectsDuplicateUsername(t *testing.T) {
	user, err := identity.NewUser("amira", "Amira", "s3cret-pass", identity.NewCapabilitySet())
	require.NoError(t, err)
	svc := NewUserService(newFakeUserRepo(user))

	_, err = svc.Create(context.Background(), CreateUserRequest{
		Username: "amira",
		Password: "longenough",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
}
