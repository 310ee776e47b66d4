package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/itzmejanak/devalaya-backend/internal/model"
)

// BlogStore is the data access the blog service depends on.
type BlogStore interface {
	List(ctx context.Context) ([]model.BlogPost, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.BlogPost, error)
	Create(ctx context.Context, p *model.BlogPost) error
	Update(ctx context.Context, id primitive.ObjectID, p *model.BlogPost) (*model.BlogPost, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BlogService implements blog post operations.
type BlogService struct {
	blogs BlogStore
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogs BlogStore) *BlogService {
	return &BlogService{blogs: blogs}
}

// List returns all posts, newest first.
func (s *BlogService) List(ctx context.Context) ([]model.BlogPost, error) {
	return s.blogs.List(ctx)
}

// Get returns a single post.
func (s *BlogService) Get(ctx context.Context, id primitive.ObjectID) (*model.BlogPost, error) {
	return s.blogs.GetByID(ctx, id)
}

// Create persists a new post and returns it with system-assigned id
// and timestamps.
func (s *BlogService) Create(ctx context.Context, req *model.CreateBlogRequest) (*model.BlogPost, error) {
	post := &model.BlogPost{
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		Author:     req.Author,
		CoverImage: req.CoverImage,
		Tags:       req.Tags,
	}
	if err := s.blogs.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update replaces the post's fields.
func (s *BlogService) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateBlogRequest) (*model.BlogPost, error) {
	return s.blogs.Update(ctx, id, &model.BlogPost{
		Title:      req.Title,
		Content:    req.Content,
		Summary:    req.Summary,
		Author:     req.Author,
		CoverImage: req.CoverImage,
		Tags:       req.Tags,
	})
}

// Delete removes the post.
func (s *BlogService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.blogs.Delete(ctx, id)
}
