package models

import (
	"time"

	"github.com/google/uuid"
)

// Menu item categories.
const (
	CategoryFood  = "FOOD"
	CategoryDrink = "DRINK"
)

// MenuItem is a sellable item owned by exactly one vendor. UnitPrice is in
// whole rupiah and must be positive.
type MenuItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	VendorID    uuid.UUID `json:"vendor_id" db:"vendor_id"`
	Name        string    `json:"name" db:"name"`
	UnitPrice   int64     `json:"unit_price" db:"unit_price"`
	Category    string    `json:"category" db:"category"`
	Description *string   `json:"description" db:"description"`
	Photo       *string   `json:"photo" db:"photo"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// MenuSearchFilter holds the query parameters accepted by the public menu
// listing endpoints.
type MenuSearchFilter struct {
	Query          string  `json:"query,omitempty"`
	Category       *string `json:"category,omitempty"`
	DiscountedOnly bool    `json:"discounted_only,omitempty"`
	Limit          int     `json:"limit,omitempty"`
	Offset         int     `json:"offset,omitempty"`
}
