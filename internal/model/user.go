package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the privilege level carried in a session token.
type Role string

const (
	RoleAdmin Role = "admin"
	// RoleSuperadmin exists outside the store: it belongs only to the
	// deployment-configured superadmin identity.
	RoleSuperadmin Role = "superadmin"
)

// User is an admin account stored in the document store. The password
// hash never leaves the server: it is excluded from JSON always.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Email        string             `bson:"email" json:"email"`
	Name         string             `bson:"name" json:"name"`
	Role         Role               `bson:"role" json:"role"`
	IsActive     bool               `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// LoginRequest is the payload for credential authentication.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// CreateUserRequest is the payload for creating an admin account.
// Any role passed by the client is ignored: API-created users are
// always role=admin.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"required,min=1,max=255"`
}

// UpdateUserRequest is the partial PATCH payload. Only the fields on
// this allow-list are touched; a present password is re-hashed.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password" binding:"omitempty,min=6,max=128"`
}

// Identity is the authenticated principal embedded in session tokens
// and echoed by login/me responses.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
