package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itzmejanak/devalaya-backend/internal/response"
	"github.com/itzmejanak/devalaya-backend/internal/service"
)

// ContentHandler serves marketing page content collections. Whether a
// payload came from the live content API or the embedded snapshot is
// not visible in the response.
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Get godoc
// GET /api/v1/data/:collection
func (h *ContentHandler) Get(c *gin.Context) {
	payload, err := h.contentService.FetchCollection(c.Request.Context(), c.Param("collection"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownCollection) {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"collection": "unknown content collection"})
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, payload)
}
