package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/itzmejanak/devalaya-backend/internal/config"
	"github.com/itzmejanak/devalaya-backend/internal/model"
)

// ErrInvalidCredentials is the single error every authentication
// failure collapses into. "No such user", "inactive user", and "wrong
// password" are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// superadminID is the synthetic identity for the deployment-configured
// superadmin, which has no stored record.
const superadminID = "superadmin"

// CredentialStore is the slice of the user repository the auth
// service needs for logins.
type CredentialStore interface {
	GetActiveByUsername(ctx context.Context, username string) (*model.User, error)
}

// Claims extends JWT standard claims with the authenticated identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID string     `json:"user_id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
}

// Identity converts claims back into the principal they assert.
func (c *Claims) Identity() model.Identity {
	return model.Identity{ID: c.UserID, Name: c.Name, Email: c.Email, Role: c.Role}
}

// AuthService handles authentication, password hashing, and session
// tokens.
type AuthService struct {
	cfg   *config.Config
	users CredentialStore
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, users CredentialStore) *AuthService {
	return &AuthService{cfg: cfg, users: users}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Authenticate validates a credential pair and returns the principal.
// The deployment-configured superadmin pair short-circuits to a
// synthetic identity with no database round-trip; everything else
// resolves against active stored accounts.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*model.Identity, error) {
	if s.isSuperadmin(username, password) {
		return &model.Identity{
			ID:    superadminID,
			Name:  "Super Admin",
			Email: "",
			Role:  model.RoleSuperadmin,
		}, nil
	}

	user, err := s.users.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &model.Identity{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *AuthService) isSuperadmin(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.SuperadminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.SuperadminPassword)) == 1
	return userOK && passOK
}

// TokenTTL returns the configured session token lifetime.
func (s *AuthService) TokenTTL() time.Duration {
	return s.cfg.JWTExpiry
}

// IssueToken creates a signed session token for the identity.
func (s *AuthService) IssueToken(identity model.Identity) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		UserID: identity.ID,
		Name:   identity.Name,
		Email:  identity.Email,
		Role:   identity.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateToken parses and validates a session token, returning the
// claims. Any tampering with the claims invalidates the signature.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// RefreshIfNeeded re-issues a token when less than half the expiry
// window remains, keeping active sessions alive without server-side
// state. Returns ("", false, nil) when no refresh is due.
func (s *AuthService) RefreshIfNeeded(claims *Claims) (string, bool, error) {
	if claims.ExpiresAt == nil {
		return "", false, nil
	}
	if time.Until(claims.ExpiresAt.Time) > s.cfg.JWTExpiry/2 {
		return "", false, nil
	}

	token, err := s.IssueToken(claims.Identity())
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

// Authorized reports whether the role is in the required set.
func Authorized(role model.Role, required ...model.Role) bool {
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}
