package domain

import "time"

// OrderStatus enumerates the lifecycle states an order may hold.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderStatuses = map[OrderStatus]bool{
	OrderStatusPending:   true,
	OrderStatusConfirmed: true,
	OrderStatusPreparing: true,
	OrderStatusReady:     true,
	OrderStatusDelivered: true,
	OrderStatusCancelled: true,
}

// ValidOrderStatus reports whether s is a known order status. Any
// known status may follow any other; only the vocabulary is enforced.
func ValidOrderStatus(s string) bool {
	return orderStatuses[OrderStatus(s)]
}

// OrderItem is a line item as submitted by the storefront cart. Items
// are stored as given and are not validated against the menu.
type OrderItem struct {
	ID       string  `bson:"id,omitempty" json:"id,omitempty"`
	Name     string  `bson:"name,omitempty" json:"name,omitempty"`
	Price    float64 `bson:"price,omitempty" json:"price,omitempty"`
	Quantity int     `bson:"quantity,omitempty" json:"quantity,omitempty"`
}

// Order is a placed order owned by a user.
type Order struct {
	ID              string      `bson:"_id" json:"id"`
	UserID          string      `bson:"user_id" json:"user_id"`
	Items           []OrderItem `bson:"items" json:"items"`
	Total           float64     `bson:"total" json:"total"`
	DeliveryAddress string      `bson:"delivery_address" json:"delivery_address"`
	Notes           string      `bson:"notes" json:"notes"`
	Status          OrderStatus `bson:"status" json:"status"`
	OrderDate       time.Time   `bson:"order_date" json:"order_date"`
}
