package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CareerListing represents a job opening. Public listings show only
// active records; the admin listing shows everything.
type CareerListing struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description" json:"description"`
	Requirements   []string           `bson:"requirements" json:"requirements"`
	Qualifications []string           `bson:"qualifications" json:"qualifications"`
	Experience     string             `bson:"experience" json:"experience"`
	Location       string             `bson:"location" json:"location"`
	IsActive       bool               `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateCareerRequest is the payload for creating a career listing.
// IsActive defaults to true when omitted.
type CreateCareerRequest struct {
	Title          string   `json:"title" binding:"required,min=1,max=255"`
	Description    string   `json:"description" binding:"required,min=1"`
	Requirements   []string `json:"requirements" binding:"required,min=1,dive,min=1"`
	Qualifications []string `json:"qualifications" binding:"required,min=1,dive,min=1"`
	Experience     string   `json:"experience" binding:"required,min=1,max=255"`
	Location       string   `json:"location" binding:"required,min=1,max=255"`
	IsActive       *bool    `json:"isActive"`
}

// UpdateCareerRequest is the payload for replacing a career listing.
type UpdateCareerRequest = CreateCareerRequest

// Active resolves the optional isActive flag, defaulting to true.
func (r *CreateCareerRequest) Active() bool {
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}
