package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/itzmejanak/devalaya-backend/internal/model"
	"github.com/itzmejanak/devalaya-backend/internal/repository"
)

// ErrSelfAction rejects deleting or deactivating the account whose
// credentials authenticated the current request.
var ErrSelfAction = errors.New("cannot delete or deactivate your own account")

// UserStore is the data access the user service depends on.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, u *model.User) error
	Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (*model.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// UserService implements admin account management.
type UserService struct {
	users UserStore
	auth  *AuthService
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore, auth *AuthService) *UserService {
	return &UserService{users: users, auth: auth}
}

// List returns all accounts, newest first.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// Get returns a single account.
func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create inserts a new account. The username must be unused by any
// account, active or inactive. The role is always admin: the API
// offers no path to a superadmin account.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	taken, err := s.users.ExistsUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, repository.ErrConflict
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Name:         req.Name,
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Patch applies the partial update allow-list (name, email, isActive,
// password). A present password is re-hashed; nothing else on the
// record can be touched through this path. Deactivating the acting
// account is refused.
func (s *UserService) Patch(ctx context.Context, id primitive.ObjectID, actorID string, req *model.UpdateUserRequest) (*model.User, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Email != nil {
		set["email"] = *req.Email
	}
	if req.IsActive != nil {
		if !*req.IsActive && id.Hex() == actorID {
			return nil, ErrSelfAction
		}
		set["isActive"] = *req.IsActive
	}
	if req.Password != nil {
		hash, err := s.auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		set["passwordHash"] = hash
	}

	return s.users.Patch(ctx, id, set)
}

// Delete removes an account. The acting account cannot delete itself.
func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID, actorID string) error {
	if id.Hex() == actorID {
		return ErrSelfAction
	}
	return s.users.Delete(ctx, id)
}
