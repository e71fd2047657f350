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

// OrderCreateInput carries a new order as submitted by the storefront.
type OrderCreateInput struct {
	Items           []domain.OrderItem
	Total           float64
	DeliveryAddress string
	Notes           string
}

// OwnerSummary is the slice of account data exposed to admins on
// order and reservation listings.
type OwnerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderView pairs an order with its owner. Owner is populated for
// admin listings only, and stays nil when the owning account has been
// deleted.
type OrderView struct {
	Order domain.Order
	Owner *OwnerSummary
}

// OrderService manages order placement and status tracking.
type OrderService struct {
	orders     repository.OrderRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, dispatcher: dispatcher, logger: logger}
}

// Create places an order for the calling user. Items are stored as
// given; totals are not recomputed against the menu.
func (s *OrderService) Create(ctx context.Context, user *domain.User, input OrderCreateInput) (*domain.Order, error) {
	if input.Total < 0 {
		return nil, apperrors.NewValidationError("total must be non-negative", nil)
	}
	order := &domain.Order{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		Items:           input.Items,
		Total:           input.Total,
		DeliveryAddress: input.DeliveryAddress,
		Notes:           input.Notes,
		Status:          domain.OrderStatusPending,
		OrderDate:       time.Now().UTC(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventOrderCreated,
		ResourceID: order.ID,
		ActorID:    user.ID,
		Timestamp:  time.Now().UTC(),
		Payload: events.OrderCreatedPayload{
			Total:           order.Total,
			ItemCount:       len(order.Items),
			DeliveryAddress: order.DeliveryAddress,
		},
	})
	return order, nil
}

// List returns orders visible to the caller, newest first. Admins see
// every order enriched with the owner account; customers see only
// their own, scoped by query filter.
func (s *OrderService) List(ctx context.Context, caller *domain.User) ([]OrderView, error) {
	if !caller.IsAdmin() {
		orders, err := s.orders.ListByUser(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		views := make([]OrderView, 0, len(orders))
		for _, order := range orders {
			views = append(views, OrderView{Order: order})
		}
		return views, nil
	}

	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, OrderView{Order: order, Owner: s.lookupOwner(ctx, order.UserID)})
	}
	return views, nil
}

// UpdateStatus sets a new status on an order. The value must belong to
// the order status enum; transitions between valid statuses are
// unconstrained.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) error {
	if !domain.ValidOrderStatus(status) {
		return apperrors.NewValidationError("invalid order status", map[string]any{"status": status})
	}
	if err := s.orders.SetStatus(ctx, id, domain.OrderStatus(status)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("order", nil)
		}
		return err
	}

	s.publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventOrderStatusChanged,
		ResourceID: id,
		Timestamp:  time.Now().UTC(),
		Payload:    events.StatusChangedPayload{NewStatus: status},
	})
	return nil
}

func (s *OrderService) lookupOwner(ctx context.Context, userID string) *OwnerSummary {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("owner lookup failed", zap.String("user_id", userID), zap.Error(err))
		} else {
			s.logger.Warn("order owner no longer exists", zap.String("user_id", userID))
		}
		return nil
	}
	return &OwnerSummary{Name: user.Name, Email: user.Email, Phone: user.Phone}
}

func (s *OrderService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
