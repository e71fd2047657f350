package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savory/restaurant-service/internal/domain"
)

// UserRepository defines persistence access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
}

type userRepository struct {
	coll      *mongo.Collection
	opTimeout time.Duration
}

// NewUserRepository returns a Mongo-backed implementation. Every
// collection call is bounded by opTimeout.
func NewUserRepository(coll *mongo.Collection, opTimeout time.Duration) UserRepository {
	return &userRepository{coll: coll, opTimeout: opTimeout}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, bson.M{"email": email})
}

func (r *userRepository) getOne(ctx context.Context, query bson.M) (*domain.User, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	var user domain.User
	err := r.coll.FindOne(ctx, query).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateFields applies a partial $set of the named fields only.
func (r *userRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
