package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Icon is a closed identifier resolved to a display glyph by the UI.
// Unknown names are rejected at write time rather than silently
// defaulting at render time.
type Icon string

const (
	IconCode       Icon = "Code"
	IconGlobe      Icon = "Globe"
	IconSmartphone Icon = "Smartphone"
	IconPalette    Icon = "Palette"
	IconDatabase   Icon = "Database"
	IconCloud      Icon = "Cloud"
	IconShield     Icon = "Shield"
	IconCpu        Icon = "Cpu"
)

// ValidIcon reports whether name is a known icon identifier.
// The empty string is allowed (no icon).
func ValidIcon(name Icon) bool {
	switch name {
	case "", IconCode, IconGlobe, IconSmartphone, IconPalette,
		IconDatabase, IconCloud, IconShield, IconCpu:
		return true
	}
	return false
}

// Project represents a portfolio entry. Featured projects surface on
// the landing page and in the flagship section.
type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	Category     string             `bson:"category" json:"category"`
	Image        string             `bson:"image" json:"image"`
	Description  string             `bson:"description" json:"description"`
	Client       string             `bson:"client" json:"client"`
	Technologies []string           `bson:"technologies,omitempty" json:"technologies,omitempty"`
	Icon         Icon               `bson:"icon,omitempty" json:"icon,omitempty"`
	Duration     string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Year         string             `bson:"year,omitempty" json:"year,omitempty"`
	Featured     bool               `bson:"featured" json:"featured"`
	Link         string             `bson:"link" json:"link"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateProjectRequest is the payload for creating a project.
// Link defaults to "#" when omitted.
type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=255"`
	Category     string   `json:"category" binding:"required,min=1,max=100"`
	Image        string   `json:"image" binding:"required,url"`
	Description  string   `json:"description" binding:"required,min=1"`
	Client       string   `json:"client" binding:"required,min=1,max=255"`
	Technologies []string `json:"technologies" binding:"omitempty,dive,min=1"`
	Icon         Icon     `json:"icon"`
	Duration     string   `json:"duration" binding:"omitempty,max=100"`
	Year         string   `json:"year" binding:"omitempty,max=10"`
	Featured     bool     `json:"featured"`
	Link         string   `json:"link"`
}

// UpdateProjectRequest is the payload for replacing a project.
type UpdateProjectRequest = CreateProjectRequest

// ResolvedLink returns the link, defaulting to "#".
func (r *CreateProjectRequest) ResolvedLink() string {
	if r.Link == "" {
		return "#"
	}
	return r.Link
}
