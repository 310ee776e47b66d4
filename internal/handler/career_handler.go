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

// CareerHandler handles career listing endpoints.
type CareerHandler struct {
	careerService *service.CareerService
}

// NewCareerHandler creates a new CareerHandler.
func NewCareerHandler(careerService *service.CareerService) *CareerHandler {
	return &CareerHandler{careerService: careerService}
}

// ListPublic godoc
// GET /api/v1/careers
// Public view: active listings only.
func (h *CareerHandler) ListPublic(c *gin.Context) {
	listings, err := h.careerService.ListPublic(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if listings == nil {
		listings = []model.CareerListing{}
	}

	response.Success(c, http.StatusOK, gin.H{"careers": listings})
}

// ListAll godoc
// GET /api/v1/admin/careers (auth)
// Admin view: every listing regardless of status.
func (h *CareerHandler) ListAll(c *gin.Context) {
	listings, err := h.careerService.ListAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if listings == nil {
		listings = []model.CareerListing{}
	}

	response.Success(c, http.StatusOK, gin.H{"careers": listings})
}

// Get godoc
// GET /api/v1/careers/:id
func (h *CareerHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	listing, err := h.careerService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"career": listing})
}

// Create godoc
// POST /api/v1/careers (auth)
func (h *CareerHandler) Create(c *gin.Context) {
	var req model.CreateCareerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	listing, err := h.careerService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"career": listing})
}

// Update godoc
// PUT /api/v1/careers/:id (auth)
func (h *CareerHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateCareerRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	listing, err := h.careerService.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"career": listing})
}

// Delete godoc
// DELETE /api/v1/careers/:id (auth)
func (h *CareerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.careerService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "career deleted successfully"})
}
