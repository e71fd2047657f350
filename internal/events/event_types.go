package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated             EventType = "order_created"
	EventOrderStatusChanged       EventType = "order_status_changed"
	EventReservationCreated       EventType = "reservation_created"
	EventReservationStatusChanged EventType = "reservation_status_changed"
	EventContactReceived          EventType = "contact_received"
)

// Event represents a domain event emitted by services. ResourceID is
// the order, reservation or contact message the event concerns;
// ActorID is the user who caused it, empty for anonymous submissions.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	ResourceID string      `json:"resource_id"`
	ActorID    string      `json:"actor_id,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// StatusChangedPayload carries a status transition.
type StatusChangedPayload struct {
	OldStatus string `json:"old_status,omitempty"`
	NewStatus string `json:"new_status"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	Total           float64 `json:"total"`
	ItemCount       int     `json:"item_count"`
	DeliveryAddress string  `json:"delivery_address"`
}

// ReservationCreatedPayload payload.
type ReservationCreatedPayload struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
}
