package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itzmejanak/devalaya-backend/internal/repository"
	"github.com/itzmejanak/devalaya-backend/internal/response"
	"github.com/itzmejanak/devalaya-backend/internal/service"
)

// CardHandler resolves digital business card slugs.
type CardHandler struct {
	cardService *service.CardService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// Get godoc
// GET /api/v1/cards/:slug
// The slug is normalized before lookup, so percent-encoded and
// mixed-case variants of the same name resolve to one record.
func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.cardService.Resolve(c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"card": card})
}
