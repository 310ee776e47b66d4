package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the wire header for request correlation. An
// inbound value is reused so traces survive proxies; otherwise an id
// is minted here.
const HeaderRequestID = "X-Request-ID"

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = "request_id"

// RequestIDMiddleware tags every request with a correlation id. The
// same id rides the response header and the envelope metadata, so a
// client-reported failure can be matched to a server log line.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestID returns the correlation id assigned to the current
// request, or an empty string when the middleware did not run.
func RequestID(c *gin.Context) string {
	val, ok := c.Get(ContextKeyRequestID)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
