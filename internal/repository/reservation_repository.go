package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/savory/restaurant-service/internal/domain"
)

// ReservationRepository defines persistence access for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	SetStatus(ctx context.Context, id string, status domain.ReservationStatus) error
}

type reservationRepository struct {
	coll      *mongo.Collection
	opTimeout time.Duration
}

// NewReservationRepository returns a Mongo-backed implementation. Every
// collection call is bounded by opTimeout.
func NewReservationRepository(coll *mongo.Collection, opTimeout time.Duration) ReservationRepository {
	return &reservationRepository{coll: coll, opTimeout: opTimeout}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, reservation)
	return err
}

func (r *reservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	return r.list(ctx, bson.M{})
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *reservationRepository) list(ctx context.Context, query bson.M) ([]domain.Reservation, error) {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	reservations := make([]domain.Reservation, 0)
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) SetStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	ctx, cancel := opCtx(ctx, r.opTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
