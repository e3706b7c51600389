package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bandsite/cms-api/internal/core/domain"
	"github.com/bandsite/cms-api/internal/core/ports"
)

const collectionUsers = "users"

// UserRepository implements ports.UserRepository. The unique index on email
// makes Create fail with a duplicate-key error for taken addresses.
type UserRepository struct {
	users collection[domain.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: newCollection[domain.User](db, collectionUsers, domain.ErrUserNotFound)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	id, err := r.users.insert(ctx, user)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.users.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.users.findByID(ctx, id)
}

func (r *UserRepository) List(ctx context.Context, page ports.Page) (*ports.List[domain.User], error) {
	return r.users.page(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}}, page)
}

func (r *UserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	return r.users.updateByID(ctx, id, bson.D{{Key: "role", Value: role}})
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if _, err := r.users.updateByID(ctx, id, bson.D{{Key: "password_hash", Value: passwordHash}}); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.users.deleteByID(ctx, id)
	return err
}
