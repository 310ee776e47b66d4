package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnvelopeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"id": RequestID(c)})
	})
	return r
}

func TestRequestIDReusesInboundHeader(t *testing.T) {
	r := testEnvelopeRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "trace-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "trace-123", w.Header().Get(HeaderRequestID))

	var body struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
		Metadata Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "trace-123", body.Data.ID)
	assert.Equal(t, "trace-123", body.Metadata.RequestID)
}

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	r := testEnvelopeRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	headerID := w.Header().Get(HeaderRequestID)
	require.NotEmpty(t, headerID)

	var body struct {
		Metadata Metadata `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, headerID, body.Metadata.RequestID,
		"envelope metadata must carry the same id as the response header")
}

func TestRequestIDWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, RequestID(c))
}
