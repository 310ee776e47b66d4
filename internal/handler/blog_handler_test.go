package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/itzmejanak/devalaya-backend/internal/model"
	"github.com/itzmejanak/devalaya-backend/internal/repository"
	"github.com/itzmejanak/devalaya-backend/internal/service"
	"github.com/itzmejanak/devalaya-backend/internal/validator"
)

// memBlogStore mimics the document store closely enough to exercise
// the full handler path: ids are assigned on create and a missing id
// is a lookup or delete miss.
type memBlogStore struct {
	posts map[primitive.ObjectID]model.BlogPost
}

func newMemBlogStore() *memBlogStore {
	return &memBlogStore{posts: map[primitive.ObjectID]model.BlogPost{}}
}

func (m *memBlogStore) List(_ context.Context) ([]model.BlogPost, error) { return nil, nil }

func (m *memBlogStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.BlogPost, error) {
	post, ok := m.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &post, nil
}

func (m *memBlogStore) Create(_ context.Context, p *model.BlogPost) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	m.posts[p.ID] = *p
	return nil
}

func (m *memBlogStore) Update(_ context.Context, id primitive.ObjectID, p *model.BlogPost) (*model.BlogPost, error) {
	if _, ok := m.posts[id]; !ok {
		return nil, repository.ErrNotFound
	}
	p.ID = id
	m.posts[id] = *p
	return p, nil
}

func (m *memBlogStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func testBlogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Setup()

	h := NewBlogHandler(service.NewBlogService(newMemBlogStore()))

	r := gin.New()
	r.POST("/blogs", h.Create)
	r.GET("/blogs/:id", h.Get)
	r.DELETE("/blogs/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBlogCreateGetRoundTrip(t *testing.T) {
	r := testBlogRouter()

	payload := model.CreateBlogRequest{
		Title:   "Scaling Services in Nepal",
		Content: "Long form body",
		Summary: "Short summary",
		Author:  "Janak Devkota",
		Tags:    []string{"engineering", "go"},
	}
	w := doJSON(t, r, http.MethodPost, "/blogs", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			Blog model.BlogPost `json:"blog"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.False(t, created.Data.Blog.ID.IsZero())

	w = doJSON(t, r, http.MethodGet, "/blogs/"+created.Data.Blog.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Data struct {
			Blog model.BlogPost `json:"blog"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))

	// Every submitted field reads back unchanged.
	assert.Equal(t, payload.Title, fetched.Data.Blog.Title)
	assert.Equal(t, payload.Content, fetched.Data.Blog.Content)
	assert.Equal(t, payload.Summary, fetched.Data.Blog.Summary)
	assert.Equal(t, payload.Author, fetched.Data.Blog.Author)
	assert.Equal(t, payload.Tags, fetched.Data.Blog.Tags)
	assert.Equal(t, created.Data.Blog.ID, fetched.Data.Blog.ID)
}

func TestBlogDeleteIdempotence(t *testing.T) {
	r := testBlogRouter()

	w := doJSON(t, r, http.MethodPost, "/blogs", model.CreateBlogRequest{
		Title:   "Short Lived",
		Content: "x",
		Summary: "x",
		Author:  "x",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			Blog model.BlogPost `json:"blog"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.Blog.ID.Hex()

	w = doJSON(t, r, http.MethodDelete, "/blogs/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// A second delete of the same id is a miss, never a second
	// success.
	w = doJSON(t, r, http.MethodDelete, "/blogs/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")

	w = doJSON(t, r, http.MethodGet, "/blogs/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogDeleteInvalidID(t *testing.T) {
	r := testBlogRouter()

	w := doJSON(t, r, http.MethodDelete, "/blogs/not-a-hex-id", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}
