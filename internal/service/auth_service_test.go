package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/itzmejanak/devalaya-backend/internal/config"
	"github.com/itzmejanak/devalaya-backend/internal/model"
	"github.com/itzmejanak/devalaya-backend/internal/repository"
)

type fakeCredentialStore struct {
	user  *model.User
	err   error
	calls int
}

func (f *fakeCredentialStore) GetActiveByUsername(_ context.Context, _ string) (*model.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret-do-not-use",
		JWTExpiry:          30 * 24 * time.Hour,
		BcryptCost:         bcrypt.MinCost,
		SuperadminUsername: "root",
		SuperadminPassword: "root-password",
	}
}

func TestAuthenticateSuperadminSkipsStore(t *testing.T) {
	store := &fakeCredentialStore{err: errors.New("store must not be called")}
	svc := NewAuthService(testAuthConfig(), store)

	identity, err := svc.Authenticate(context.Background(), "root", "root-password")
	require.NoError(t, err)

	assert.Equal(t, "superadmin", identity.ID)
	assert.Equal(t, model.RoleSuperadmin, identity.Role)
	assert.Zero(t, store.calls, "superadmin login must not touch the store")
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		store    *fakeCredentialStore
		username string
		password string
	}{
		{
			name:     "unknown user",
			store:    &fakeCredentialStore{err: repository.ErrNotFound},
			username: "ghost",
			password: "whatever",
		},
		{
			name: "wrong password",
			store: &fakeCredentialStore{user: &model.User{
				Username:     "janak",
				PasswordHash: string(hash),
				Role:         model.RoleAdmin,
			}},
			username: "janak",
			password: "wrong-password",
		},
		{
			// Inactive accounts are filtered by the store lookup, so
			// they surface as a lookup miss here.
			name:     "inactive user",
			store:    &fakeCredentialStore{err: repository.ErrNotFound},
			username: "janak",
			password: "correct-password",
		},
		{
			name:     "superadmin username with wrong password",
			store:    &fakeCredentialStore{err: repository.ErrNotFound},
			username: "root",
			password: "not-the-password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(testAuthConfig(), tt.store)
			identity, err := svc.Authenticate(context.Background(), tt.username, tt.password)
			assert.Nil(t, identity)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthenticateActiveUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &fakeCredentialStore{user: &model.User{
		Username:     "janak",
		PasswordHash: string(hash),
		Name:         "Janak Devkota",
		Email:        "janak@devalaya.com.np",
		Role:         model.RoleAdmin,
	}}
	svc := NewAuthService(testAuthConfig(), store)

	identity, err := svc.Authenticate(context.Background(), "janak", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, identity.Role)
	assert.Equal(t, "Janak Devkota", identity.Name)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), &fakeCredentialStore{})

	identity := model.Identity{
		ID:    "64f1a2b3c4d5e6f708192a3b",
		Name:  "Janak Devkota",
		Email: "janak@devalaya.com.np",
		Role:  model.RoleAdmin,
	}

	token, err := svc.IssueToken(identity)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity())
	assert.NotEmpty(t, claims.ID, "token must carry a jti")
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), &fakeCredentialStore{})

	token, err := svc.IssueToken(model.Identity{ID: "abc", Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)

	otherCfg := testAuthConfig()
	otherCfg.JWTSecret = "a-different-secret"
	other := NewAuthService(otherCfg, &fakeCredentialStore{})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestRefreshIfNeeded(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), &fakeCredentialStore{})

	fresh, err := svc.IssueToken(model.Identity{ID: "abc", Role: model.RoleAdmin})
	require.NoError(t, err)
	claims, err := svc.ValidateToken(fresh)
	require.NoError(t, err)

	token, refreshed, err := svc.RefreshIfNeeded(claims)
	require.NoError(t, err)
	assert.False(t, refreshed, "a fresh token must not be refreshed")
	assert.Empty(t, token)

	// Past the half-window: hand-build claims expiring soon.
	aging := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "abc",
		Role:   model.RoleAdmin,
	}
	token, refreshed, err = svc.RefreshIfNeeded(aging)
	require.NoError(t, err)
	assert.True(t, refreshed)

	newClaims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", newClaims.UserID)
	assert.Equal(t, model.RoleAdmin, newClaims.Role)
}

func TestHashPasswordRoundTrip(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), &fakeCredentialStore{})

	hash, err := svc.HashPassword("secret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.NoError(t, svc.CheckPassword(hash, "secret-password"))
	assert.ErrorIs(t, svc.CheckPassword(hash, "other"), ErrInvalidCredentials)
}

func TestAuthorized(t *testing.T) {
	assert.True(t, Authorized(model.RoleAdmin, model.RoleAdmin, model.RoleSuperadmin))
	assert.True(t, Authorized(model.RoleSuperadmin, model.RoleSuperadmin))
	assert.False(t, Authorized(model.RoleAdmin, model.RoleSuperadmin))
	assert.False(t, Authorized(model.RoleAdmin))
}
