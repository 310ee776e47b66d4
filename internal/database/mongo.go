package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/itzmejanak/devalaya-backend/internal/config"
)

// Collection names in the document store.
const (
	ColBlogs    = "blogs"
	ColCareers  = "careers"
	ColProjects = "projects"
	ColUsers    = "users"
)

// Mongo wraps the driver client and hands out named collections.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect creates and validates a MongoDB client connection.
func Connect(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	log.Info().
		Str("db", cfg.MongoDBName).
		Msg("MongoDB connected")

	return &Mongo{
		client: client,
		db:     client.Database(cfg.MongoDBName),
	}, nil
}

// Collection returns a handle to the named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// EnsureIndexes creates the indexes the application depends on.
// Safe to call on every startup; existing indexes are left alone.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.Collection(ColUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("ensure username index: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
