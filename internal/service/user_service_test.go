package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/itzmejanak/devalaya-backend/internal/config"
	"github.com/itzmejanak/devalaya-backend/internal/model"
	"github.com/itzmejanak/devalaya-backend/internal/repository"
)

type fakeUserStore struct {
	existing   bool
	created    *model.User
	patchedSet bson.M
	deletedID  primitive.ObjectID
}

func (f *fakeUserStore) List(_ context.Context) ([]model.User, error) { return nil, nil }

func (f *fakeUserStore) GetByID(_ context.Context, _ primitive.ObjectID) (*model.User, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) ExistsUsername(_ context.Context, _ string) (bool, error) {
	return f.existing, nil
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	f.created = u
	return nil
}

func (f *fakeUserStore) Patch(_ context.Context, _ primitive.ObjectID, set bson.M) (*model.User, error) {
	f.patchedSet = set
	return &model.User{}, nil
}

func (f *fakeUserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	f.deletedID = id
	return nil
}

func testUserService(store *fakeUserStore) *UserService {
	cfg := &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	return NewUserService(store, NewAuthService(cfg, nil))
}

func TestUserCreateConflictWritesNothing(t *testing.T) {
	store := &fakeUserStore{existing: true}
	svc := testUserService(store)

	user, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Username: "janak",
		Password: "password123",
		Email:    "janak@devalaya.com.np",
		Name:     "Janak Devkota",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.Nil(t, store.created, "conflicting create must not write")
}

func TestUserCreateForcesAdminRoleAndHashesPassword(t *testing.T) {
	store := &fakeUserStore{}
	svc := testUserService(store)

	user, err := svc.Create(context.Background(), &model.CreateUserRequest{
		Username: "janak",
		Password: "password123",
		Email:    "janak@devalaya.com.np",
		Name:     "Janak Devkota",
	})
	require.NoError(t, err)

	assert.Equal(t, model.RoleAdmin, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}

func TestUserJSONNeverExposesPasswordHash(t *testing.T) {
	user := model.User{
		Username:     "janak",
		PasswordHash: "$2a$04$sensitive",
		Email:        "janak@devalaya.com.np",
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "sensitive")
	assert.NotContains(t, string(raw), "passwordHash")
}

func TestUserPatchAllowList(t *testing.T) {
	store := &fakeUserStore{}
	svc := testUserService(store)

	name := "New Name"
	password := "new-password"
	_, err := svc.Patch(context.Background(), primitive.NewObjectID(), "someone-else", &model.UpdateUserRequest{
		Name:     &name,
		Password: &password,
	})
	require.NoError(t, err)

	assert.Contains(t, store.patchedSet, "name")
	assert.Contains(t, store.patchedSet, "passwordHash")
	assert.NotContains(t, store.patchedSet, "username")
	assert.NotContains(t, store.patchedSet, "role")
	assert.NotContains(t, store.patchedSet, "email")

	hash, ok := store.patchedSet["passwordHash"].(string)
	require.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password")))
}

func TestUserSelfProtection(t *testing.T) {
	store := &fakeUserStore{}
	svc := testUserService(store)

	self := primitive.NewObjectID()
	inactive := false

	_, err := svc.Patch(context.Background(), self, self.Hex(), &model.UpdateUserRequest{IsActive: &inactive})
	assert.ErrorIs(t, err, ErrSelfAction)

	err = svc.Delete(context.Background(), self, self.Hex())
	assert.ErrorIs(t, err, ErrSelfAction)
	assert.True(t, store.deletedID.IsZero(), "self delete must not reach the store")

	// Deactivating someone else is fine.
	other := primitive.NewObjectID()
	_, err = svc.Patch(context.Background(), other, self.Hex(), &model.UpdateUserRequest{IsActive: &inactive})
	assert.NoError(t, err)

	// Re-activating yourself is fine too.
	active := true
	_, err = svc.Patch(context.Background(), self, self.Hex(), &model.UpdateUserRequest{IsActive: &active})
	assert.NoError(t, err)
}
