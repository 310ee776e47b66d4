package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/itzmejanak/devalaya-backend/internal/model"
	"github.com/itzmejanak/devalaya-backend/internal/response"
	"github.com/itzmejanak/devalaya-backend/internal/service"
)

const (
	// ContextKeyClaims is the Gin context key for session claims.
	ContextKeyClaims = "claims"
	// SessionCookie is the cookie name the login endpoint sets.
	SessionCookie = "session"
	// RefreshedTokenHeader carries an implicitly re-issued token back
	// to the client when the current one is past half its lifetime.
	RefreshedTokenHeader = "X-Refreshed-Token"
)

// RequireRole validates the session token and checks the role claim
// against the allowed set. A missing token, an invalid or tampered
// token, and a role outside the set all produce the same unauthorized
// outcome; the response never says which check failed.
func RequireRole(authService *service.AuthService, roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractAndValidateClaims(c, authService)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthorized)
			return
		}

		if !service.Authorized(claims.Role, roles...) {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrUnauthorized)
			return
		}

		token, refreshed, err := authService.RefreshIfNeeded(claims)
		switch {
		case err != nil:
			// The current token is still valid, so the request
			// proceeds; the client just misses one refresh window.
			log.Warn().Err(err).Msg("Implicit session refresh failed")
		case refreshed:
			c.Header(RefreshedTokenHeader, token)
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// GetClaims retrieves the session claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}

func extractAndValidateClaims(c *gin.Context, authService *service.AuthService) (*service.Claims, error) {
	tokenStr := ""

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			tokenStr = parts[1]
		}
	}

	// Browser clients carry the token in the session cookie instead.
	if tokenStr == "" {
		if cookie, err := c.Cookie(SessionCookie); err == nil {
			tokenStr = cookie
		}
	}

	if tokenStr == "" {
		return nil, errors.New("authorization header or session cookie required")
	}

	return authService.ValidateToken(tokenStr)
}
