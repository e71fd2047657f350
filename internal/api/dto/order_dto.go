package dto

import "github.com/savory/restaurant-service/internal/domain"

// CreateOrderRequest carries a new order. Items and Total are pointers
// so missing fields can be told apart from an explicitly empty list and
// a zero total; an empty items list is accepted and stored as-is.
type CreateOrderRequest struct {
	Items           *[]domain.OrderItem `json:"items"`
	Total           *float64            `json:"total"`
	DeliveryAddress string              `json:"delivery_address"`
	Notes           string              `json:"notes"`
}

// OwnerInfo is the account slice admins see on listings.
type OwnerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// AdminOrderResponse is an order as listed for admins. User is
// explicitly null when the owning account has been deleted.
type AdminOrderResponse struct {
	domain.Order
	User *OwnerInfo `json:"user"`
}
