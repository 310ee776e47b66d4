package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/itzmejanak/devalaya-backend/internal/model"
)

// ErrUnknownIcon rejects project payloads naming an icon identifier
// outside the closed enum. Enforced at write time so the UI never has
// to fall back to a default glyph.
var ErrUnknownIcon = errors.New("unknown icon identifier")

// ProjectStore is the data access the project service depends on.
type ProjectStore interface {
	List(ctx context.Context) ([]model.Project, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, id primitive.ObjectID, p *model.Project) (*model.Project, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProjectService implements project operations.
type ProjectService struct {
	projects ProjectStore
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projects ProjectStore) *ProjectService {
	return &ProjectService{projects: projects}
}

// List returns all projects, newest first.
func (s *ProjectService) List(ctx context.Context) ([]model.Project, error) {
	return s.projects.List(ctx)
}

// Get returns a single project.
func (s *ProjectService) Get(ctx context.Context, id primitive.ObjectID) (*model.Project, error) {
	return s.projects.GetByID(ctx, id)
}

// Create persists a new project. Link defaults to "#".
func (s *ProjectService) Create(ctx context.Context, req *model.CreateProjectRequest) (*model.Project, error) {
	project, err := projectFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update replaces the project's fields.
func (s *ProjectService) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateProjectRequest) (*model.Project, error) {
	project, err := projectFromRequest(req)
	if err != nil {
		return nil, err
	}
	return s.projects.Update(ctx, id, project)
}

// Delete removes the project.
func (s *ProjectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.projects.Delete(ctx, id)
}

// SplitFeatured partitions projects into the flagship subset
// (featured=true) and its complement, preserving order. The landing
// page renders the first slice, the "more projects" grid the second.
func SplitFeatured(projects []model.Project) (featured, more []model.Project) {
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		} else {
			more = append(more, p)
		}
	}
	return featured, more
}

func projectFromRequest(req *model.CreateProjectRequest) (*model.Project, error) {
	if !model.ValidIcon(req.Icon) {
		return nil, ErrUnknownIcon
	}
	return &model.Project{
		Title:        req.Title,
		Category:     req.Category,
		Image:        req.Image,
		Description:  req.Description,
		Client:       req.Client,
		Technologies: req.Technologies,
		Icon:         req.Icon,
		Duration:     req.Duration,
		Year:         req.Year,
		Featured:     req.Featured,
		Link:         req.ResolvedLink(),
	}, nil
}
