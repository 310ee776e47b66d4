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

// CareerRepository handles career listing data access.
type CareerRepository struct {
	col *mongo.Collection
}

// NewCareerRepository creates a new CareerRepository.
func NewCareerRepository(db *database.Mongo) *CareerRepository {
	return &CareerRepository{col: db.Collection(database.ColCareers)}
}

// List returns career listings, newest first. With activeOnly set the
// result is restricted to isActive=true (the public view).
func (r *CareerRepository) List(ctx context.Context, activeOnly bool) ([]model.CareerListing, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}

	cur, err := r.col.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var listings []model.CareerListing
	if err := cur.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// GetByID retrieves a career listing by its id.
func (r *CareerRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.CareerListing, error) {
	l := &model.CareerListing{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(l)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create inserts a new career listing, stamping id and timestamps.
func (r *CareerRepository) Create(ctx context.Context, l *model.CareerListing) error {
	now := time.Now().UTC()
	l.ID = primitive.NewObjectID()
	l.CreatedAt = now
	l.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, l)
	return err
}

// Update replaces the mutable fields of a career listing.
func (r *CareerRepository) Update(ctx context.Context, id primitive.ObjectID, l *model.CareerListing) (*model.CareerListing, error) {
	update := bson.M{"$set": bson.M{
		"title":          l.Title,
		"description":    l.Description,
		"requirements":   l.Requirements,
		"qualifications": l.Qualifications,
		"experience":     l.Experience,
		"location":       l.Location,
		"isActive":       l.IsActive,
		"updatedAt":      time.Now().UTC(),
	}}

	updated := &model.CareerListing{}
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

// Delete removes a career listing.
func (r *CareerRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
