package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/itzmejanak/devalaya-backend/internal/database"
	"github.com/itzmejanak/devalaya-backend/internal/model"
)

// BlogRepository handles blog post data access.
type BlogRepository struct {
	col *mongo.Collection
}

// NewBlogRepository creates a new BlogRepository.
func NewBlogRepository(db *database.Mongo) *BlogRepository {
	return &BlogRepository{col: db.Collection(database.ColBlogs)}
}

// List returns all blog posts, newest first.
func (r *BlogRepository) List(ctx context.Context) ([]model.BlogPost, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []model.BlogPost
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetByID retrieves a blog post by its id.
func (r *BlogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.BlogPost, error) {
	p := &model.BlogPost{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new blog post, stamping id and timestamps.
func (r *BlogRepository) Create(ctx context.Context, p *model.BlogPost) error {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, p)
	return err
}

// Update replaces the mutable fields of a blog post and bumps
// updatedAt. createdAt is never touched.
func (r *BlogRepository) Update(ctx context.Context, id primitive.ObjectID, p *model.BlogPost) (*model.BlogPost, error) {
	update := bson.M{"$set": bson.M{
		"title":      p.Title,
		"content":    p.Content,
		"summary":    p.Summary,
		"author":     p.Author,
		"coverImage": p.CoverImage,
		"tags":       p.Tags,
		"updatedAt":  time.Now().UTC(),
	}}

	updated := &model.BlogPost{}
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a blog post. Deleting a missing id reports
// ErrNotFound, never a second success.
func (r *BlogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
