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

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List godoc
// GET /api/v1/projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if projects == nil {
		projects = []model.Project{}
	}

	response.Success(c, http.StatusOK, gin.H{"projects": projects})
}

// ListFeatured godoc
// GET /api/v1/projects/featured
// Returns the flagship partition: featured projects and the rest,
// as the landing page renders them.
func (h *ProjectHandler) ListFeatured(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	featured, more := service.SplitFeatured(projects)
	if featured == nil {
		featured = []model.Project{}
	}
	if more == nil {
		more = []model.Project{}
	}

	response.Success(c, http.StatusOK, gin.H{"featured": featured, "more": more})
}

// Get godoc
// GET /api/v1/projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := h.projectService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": project})
}

// Create godoc
// POST /api/v1/projects (auth)
func (h *ProjectHandler) Create(c *gin.Context) {
	var req model.CreateProjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownIcon) {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"icon": "unknown icon identifier"})
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"project": project})
}

// Update godoc
// PUT /api/v1/projects/:id (auth)
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateProjectRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownIcon):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"icon": "unknown icon identifier"})
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"project": project})
}

// Delete godoc
// DELETE /api/v1/projects/:id (auth)
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "project deleted successfully"})
}
