package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/itzmejanak/devalaya-backend/internal/model"
)

// CareerStore is the data access the career service depends on.
type CareerStore interface {
	List(ctx context.Context, activeOnly bool) ([]model.CareerListing, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.CareerListing, error)
	Create(ctx context.Context, l *model.CareerListing) error
	Update(ctx context.Context, id primitive.ObjectID, l *model.CareerListing) (*model.CareerListing, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CareerService implements career listing operations.
type CareerService struct {
	careers CareerStore
}

// NewCareerService creates a new CareerService.
func NewCareerService(careers CareerStore) *CareerService {
	return &CareerService{careers: careers}
}

// ListPublic returns active listings only, newest first. This is the
// view the careers page renders.
func (s *CareerService) ListPublic(ctx context.Context) ([]model.CareerListing, error) {
	return s.careers.List(ctx, true)
}

// ListAll returns every listing regardless of status, for the admin
// table.
func (s *CareerService) ListAll(ctx context.Context) ([]model.CareerListing, error) {
	return s.careers.List(ctx, false)
}

// Get returns a single listing.
func (s *CareerService) Get(ctx context.Context, id primitive.ObjectID) (*model.CareerListing, error) {
	return s.careers.GetByID(ctx, id)
}

// Create persists a new listing. IsActive defaults to true when the
// payload omits it.
func (s *CareerService) Create(ctx context.Context, req *model.CreateCareerRequest) (*model.CareerListing, error) {
	listing := &model.CareerListing{
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Qualifications: req.Qualifications,
		Experience:     req.Experience,
		Location:       req.Location,
		IsActive:       req.Active(),
	}
	if err := s.careers.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Update replaces the listing's fields.
func (s *CareerService) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateCareerRequest) (*model.CareerListing, error) {
	return s.careers.Update(ctx, id, &model.CareerListing{
		Title:          req.Title,
		Description:    req.Description,
		Requirements:   req.Requirements,
		Qualifications: req.Qualifications,
		Experience:     req.Experience,
		Location:       req.Location,
		IsActive:       req.Active(),
	})
}

// Delete removes the listing.
func (s *CareerService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.careers.Delete(ctx, id)
}
