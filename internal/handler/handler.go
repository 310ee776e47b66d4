// Package handler contains the Gin HTTP handlers. Handlers bind and
// validate payloads, call services, and map service errors onto the
// response envelope; no business rules live here.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/itzmejanak/devalaya-backend/internal/response"
)

// parseID extracts and parses the :id path param. On a malformed id
// it writes the 400 response itself and reports false.
func parseID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return primitive.NilObjectID, false
	}
	return id, true
}
