package domain

import "time"

// MenuItem is a dish or drink offered on the menu. Category is a
// free-text tag the storefront uses for filtering.
type MenuItem struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Image       string    `bson:"image" json:"image"`
	Available   bool      `bson:"available" json:"available"`
	Popular     bool      `bson:"popular" json:"popular"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
