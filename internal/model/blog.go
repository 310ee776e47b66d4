package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost represents a published article on the marketing site.
type BlogPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Content    string             `bson:"content" json:"content"`
	Summary    string             `bson:"summary" json:"summary"`
	Author     string             `bson:"author" json:"author"`
	CoverImage string             `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	Tags       []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateBlogRequest is the payload for creating a blog post.
type CreateBlogRequest struct {
	Title      string   `json:"title" binding:"required,min=1,max=255"`
	Content    string   `json:"content" binding:"required,min=1"`
	Summary    string   `json:"summary" binding:"required,min=1"`
	Author     string   `json:"author" binding:"required,min=1,max=255"`
	CoverImage string   `json:"coverImage" binding:"omitempty,url"`
	Tags       []string `json:"tags" binding:"omitempty,dive,min=1"`
}

// UpdateBlogRequest is the payload for replacing a blog post.
// Update semantics are "set provided fields": the same required set
// as create applies.
type UpdateBlogRequest = CreateBlogRequest
