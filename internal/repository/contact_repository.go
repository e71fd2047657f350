package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/savory/restaurant-service/internal/domain"
)

// ContactRepository persists contact-form submissions. The handler
// surface is write-only; no read path exists.
type ContactRepository interface {
	Create(ctx context.Context, message *domain.ContactMessage) error
}

type contactRepository struct {
	coll      *mongo.Collection
	opTimeout time.Duration
}

// NewContactRepository returns a Mongo-backed implementation. Every
// collection call is bounded by opTimeout.
func NewContactRepository(coll *mongo.Collection, opTimeout time.Duration) ContactRepository {
	return &contactRepository{coll: coll, opTimeout: opTimeout}
}

func (r *contactRepository) Create(ctx context.Context, message *domain.ContactMessage) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, message)
	return err
}
