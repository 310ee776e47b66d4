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

// UserRepository handles admin account data access.
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *database.Mongo) *UserRepository {
	return &UserRepository{col: db.Collection(database.ColUsers)}
}

// List returns all admin accounts, newest first.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID retrieves an account by its id.
func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	u := &model.User{}
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetActiveByUsername retrieves an account by username, restricted to
// isActive=true. Used by the login path: deactivated accounts cannot
// authenticate.
func (r *UserRepository) GetActiveByUsername(ctx context.Context, username string) (*model.User, error) {
	u := &model.User{}
	err := r.col.FindOne(ctx, bson.M{"username": username, "isActive": true}).Decode(u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ExistsUsername reports whether any account, active or inactive,
// holds the username.
func (r *UserRepository) ExistsUsername(ctx context.Context, username string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"username": username},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a new account. A duplicate username maps to
// ErrConflict via the unique index, closing the race between the
// uniqueness pre-check and the insert.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now

	_, err := r.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}
	return err
}

// Patch applies a partial $set to an account and returns the updated
// record. Callers build the set from the PATCH allow-list only.
func (r *UserRepository) Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.User, error) {
	set["updatedAt"] = time.Now().UTC()

	updated := &model.User{}
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an account.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
