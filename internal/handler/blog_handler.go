package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/itzmejanak/devalaya-backend/internal/model"
	"github.com/itzmejanak/devalaya-backend/internal/repository"
	"github.com/itzmejanak/devalaya-backend/internal/response"
	"github.com/itzmejanak/devalaya-backend/internal/service"
	"github.com/itzmejanak/devalaya-backend/internal/validator"
)

// BlogHandler handles blog post endpoints.
type BlogHandler struct {
	blogService *service.BlogService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService *service.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// List godoc
// GET /api/v1/blogs
func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.blogService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if posts == nil {
		posts = []model.BlogPost{}
	}

	response.Success(c, http.StatusOK, gin.H{"blogs": posts})
}

// Get godoc
// GET /api/v1/blogs/:id
func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.blogService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blog": post})
}

// Create godoc
// POST /api/v1/blogs (auth)
func (h *BlogHandler) Create(c *gin.Context) {
	var req model.CreateBlogRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	post, err := h.blogService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"blog": post})
}

// Update godoc
// PUT /api/v1/blogs/:id (auth)
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateBlogRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	post, err := h.blogService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"blog": post})
}

// Delete godoc
// DELETE /api/v1/blogs/:id (auth)
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "blog deleted successfully"})
}
