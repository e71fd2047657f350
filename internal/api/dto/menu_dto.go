package dto

// MenuItemRequest carries the writable fields of a menu item.
// Pointers distinguish absent fields from zero values so defaults can
// apply: price is required, available defaults to true, popular to
// false.
type MenuItemRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Image       string   `json:"image"`
	Available   *bool    `json:"available"`
	Popular     *bool    `json:"popular"`
}

// StatusUpdateRequest carries a status mutation.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
