package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/savory/restaurant-service/internal/domain"
	"github.com/savory/restaurant-service/internal/events"
	"github.com/savory/restaurant-service/internal/repository"
	apperrors "github.com/savory/restaurant-service/pkg/util"
)

// ReservationCreateInput carries a new table reservation request.
type ReservationCreateInput struct {
	Date   string
	Time   string
	Guests int
	Notes  string
}

// ReservationView pairs a reservation with its owner; Owner follows
// the same rules as OrderView.
type ReservationView struct {
	Reservation domain.Reservation
	Owner       *OwnerSummary
}

// ReservationService manages table reservations.
type ReservationService struct {
	reservations repository.ReservationRepository
	users        repository.UserRepository
	dispatcher   events.Dispatcher
	logger       *zap.Logger
}

// NewReservationService builds the service.
func NewReservationService(reservations repository.ReservationRepository, users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ReservationService {
	return &ReservationService{reservations: reservations, users: users, dispatcher: dispatcher, logger: logger}
}

// Create books a table for the calling user. Availability conflicts
// are not resolved; every request is accepted as pending.
func (s *ReservationService) Create(ctx context.Context, user *domain.User, input ReservationCreateInput) (*domain.Reservation, error) {
	if input.Guests <= 0 {
		return nil, apperrors.NewValidationError("guests must be a positive number", nil)
	}
	reservation := &domain.Reservation{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Date:      input.Date,
		Time:      input.Time,
		Guests:    input.Guests,
		Notes:     input.Notes,
		Status:    domain.ReservationStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventReservationCreated,
		ResourceID: reservation.ID,
		ActorID:    user.ID,
		Timestamp:  time.Now().UTC(),
		Payload: events.ReservationCreatedPayload{
			Date:   reservation.Date,
			Time:   reservation.Time,
			Guests: reservation.Guests,
		},
	})
	return reservation, nil
}

// List returns reservations visible to the caller, newest first, with
// the same admin enrichment as orders.
func (s *ReservationService) List(ctx context.Context, caller *domain.User) ([]ReservationView, error) {
	if !caller.IsAdmin() {
		reservations, err := s.reservations.ListByUser(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		views := make([]ReservationView, 0, len(reservations))
		for _, reservation := range reservations {
			views = append(views, ReservationView{Reservation: reservation})
		}
		return views, nil
	}

	reservations, err := s.reservations.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ReservationView, 0, len(reservations))
	for _, reservation := range reservations {
		views = append(views, ReservationView{
			Reservation: reservation,
			Owner:       s.lookupOwner(ctx, reservation.UserID),
		})
	}
	return views, nil
}

// UpdateStatus sets a new status on a reservation, enum-checked.
func (s *ReservationService) UpdateStatus(ctx context.Context, id, status string) error {
	if !domain.ValidReservationStatus(status) {
		return apperrors.NewValidationError("invalid reservation status", map[string]any{"status": status})
	}
	if err := s.reservations.SetStatus(ctx, id, domain.ReservationStatus(status)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("reservation", nil)
		}
		return err
	}

	s.publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventReservationStatusChanged,
		ResourceID: id,
		Timestamp:  time.Now().UTC(),
		Payload:    events.StatusChangedPayload{NewStatus: status},
	})
	return nil
}

func (s *ReservationService) lookupOwner(ctx context.Context, userID string) *OwnerSummary {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("owner lookup failed", zap.String("user_id", userID), zap.Error(err))
		} else {
			s.logger.Warn("reservation owner no longer exists", zap.String("user_id", userID))
		}
		return nil
	}
	return &OwnerSummary{Name: user.Name, Email: user.Email, Phone: user.Phone}
}

func (s *ReservationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
