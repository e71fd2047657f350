package dto

import "github.com/savory/restaurant-service/internal/domain"

// CreateReservationRequest carries a new table reservation. Guests is
// a pointer so a missing field can be told apart from zero.
type CreateReservationRequest struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests *int   `json:"guests"`
	Notes  string `json:"notes"`
}

// AdminReservationResponse is a reservation as listed for admins.
type AdminReservationResponse struct {
	domain.Reservation
	User *OwnerInfo `json:"user"`
}
