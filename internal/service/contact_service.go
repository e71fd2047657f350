package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/savory/restaurant-service/internal/domain"
	"github.com/savory/restaurant-service/internal/events"
	"github.com/savory/restaurant-service/internal/repository"
)

// ContactInput carries a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactService persists contact-form submissions.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
}

// NewContactService builds the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher}
}

// Submit stores a message as unread.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*domain.ContactMessage, error) {
	message := &domain.ContactMessage{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    domain.ContactStatusUnread,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contacts.Create(ctx, message); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:         uuid.NewString(),
			Type:       events.EventContactReceived,
			ResourceID: message.ID,
			Timestamp:  time.Now().UTC(),
			Payload:    events.ContactReceivedPayload{Email: message.Email, Subject: message.Subject},
		})
	}
	return message, nil
}
