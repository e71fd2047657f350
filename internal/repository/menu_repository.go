package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/savory/restaurant-service/internal/domain"
)

// MenuFilter narrows menu listings. The zero value lists every
// available item.
type MenuFilter struct {
	Category    string
	Search      string
	PopularOnly bool
	Limit       int64
}

// MenuRepository defines persistence access for menu items.
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	List(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type menuRepository struct {
	coll      *mongo.Collection
	opTimeout time.Duration
}

// NewMenuRepository returns a Mongo-backed implementation. Every
// collection call is bounded by opTimeout.
func NewMenuRepository(coll *mongo.Collection, opTimeout time.Duration) MenuRepository {
	return &menuRepository{coll: coll, opTimeout: opTimeout}
}

func (r *menuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, item)
	return err
}

// List returns available items matching the filter. Search is a
// case-insensitive regex over name and description.
func (r *menuRepository) List(ctx context.Context, filter MenuFilter) ([]domain.MenuItem, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	query := bson.M{"available": true}

	if filter.Category != "" && filter.Category != "all" {
		query["category"] = filter.Category
	}
	if filter.PopularOnly {
		query["popular"] = true
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	opts := options.Find()
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	items := make([]domain.MenuItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) Update(ctx context.Context, id string, fields map[string]any) error {
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

func (r *menuRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{})
}
