package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/savory/restaurant-service/internal/events"
)

// NotificationService reacts to domain events. Email delivery is out
// of scope, so handlers log what a delivery channel would send.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventOrderCreated, n.handleOrderCreated)
	n.dispatcher.Subscribe(events.EventOrderStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventReservationCreated, n.handleReservationCreated)
	n.dispatcher.Subscribe(events.EventReservationStatusChanged, n.handleStatusChanged)
	n.dispatcher.Subscribe(events.EventContactReceived, n.handleContactReceived)
}

func (n *NotificationService) handleOrderCreated(_ context.Context, event events.Event) error {
	n.logger.Info("OrderCreated", zap.String("order_id", event.ResourceID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleReservationCreated(_ context.Context, event events.Event) error {
	n.logger.Info("ReservationCreated", zap.String("reservation_id", event.ResourceID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("StatusChanged",
		zap.String("event_type", string(event.Type)),
		zap.String("resource_id", event.ResourceID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleContactReceived(_ context.Context, event events.Event) error {
	n.logger.Info("ContactReceived", zap.String("contact_id", event.ResourceID), zap.Any("payload", event.Payload))
	return nil
}
