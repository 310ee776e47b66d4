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

// ProjectRepository handles project data access.
type ProjectRepository struct {
	col *mongo.Collection
}

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository(db *database.Mongo) *ProjectRepository {
	return &ProjectRepository{col: db.Collection(database.ColProjects)}
}

// List returns all projects, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var projects []model.Project
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID retrieves a project by its id.
func (r *ProjectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Project, error) {
	p := &model.Project{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new project, stamping id and timestamps.
func (r *ProjectRepository) Create(ctx context.Context, p *model.Project) error {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, p)
	return err
}

// Update replaces the mutable fields of a project.
func (r *ProjectRepository) Update(ctx context.Context, id primitive.ObjectID, p *model.Project) (*model.Project, error) {
	update := bson.M{"$set": bson.M{
		"title":        p.Title,
		"category":     p.Category,
		"image":        p.Image,
		"description":  p.Description,
		"client":       p.Client,
		"technologies": p.Technologies,
		"icon":         p.Icon,
		"duration":     p.Duration,
		"year":         p.Year,
		"featured":     p.Featured,
		"link":         p.Link,
		"updatedAt":    time.Now().UTC(),
	}}

	updated := &model.Project{}
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

// Delete removes a project.
func (r *ProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
