package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itzmejanak/devalaya-backend/internal/middleware"
	"github.com/itzmejanak/devalaya-backend/internal/model"
	"github.com/itzmejanak/devalaya-backend/internal/response"
	"github.com/itzmejanak/devalaya-backend/internal/service"
	"github.com/itzmejanak/devalaya-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /api/v1/auth/login
// Validates username + password and returns a session token. The
// token is also set as an HttpOnly cookie for browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	identity, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthorized)
		return
	}

	token, err := h.authService.IssueToken(*identity)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	// Cookie lifetime tracks the configured token expiry.
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(h.authService.TokenTTL().Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  identity,
	})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the identity asserted by the current session token.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthorized)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": claims.Identity()})
}

// Logout godoc
// POST /api/v1/auth/logout
// Clears the session cookie. The token itself stays valid until
// expiry since sessions are stateless.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{})
}
