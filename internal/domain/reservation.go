package domain

import "time"

// ReservationStatus enumerates the states a table reservation may hold.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

var reservationStatuses = map[ReservationStatus]bool{
	ReservationStatusPending:   true,
	ReservationStatusConfirmed: true,
	ReservationStatusCancelled: true,
}

// ValidReservationStatus reports whether s is a known reservation status.
func ValidReservationStatus(s string) bool {
	return reservationStatuses[ReservationStatus(s)]
}

// Reservation is a table booking owned by a user. Date and time are
// stored as the storefront submits them.
type Reservation struct {
	ID        string            `bson:"_id" json:"id"`
	UserID    string            `bson:"user_id" json:"user_id"`
	Date      string            `bson:"date" json:"date"`
	Time      string            `bson:"time" json:"time"`
	Guests    int               `bson:"guests" json:"guests"`
	Notes     string            `bson:"notes" json:"notes"`
	Status    ReservationStatus `bson:"status" json:"status"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}
