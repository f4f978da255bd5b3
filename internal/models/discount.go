package models

import (
	"time"

	"github.com/google/uuid"
)

// Discount is a time-windowed percentage reduction owned by one vendor.
// The validity window is half-open: a discount is active at instant t when
// StartsAt <= t < EndsAt.
type Discount struct {
	ID        uuid.UUID `json:"id" db:"id"`
	VendorID  uuid.UUID `json:"vendor_id" db:"vendor_id"`
	Name      string    `json:"name" db:"name"`
	Percent   int       `json:"percent" db:"percent"`
	StartsAt  time.Time `json:"starts_at" db:"starts_at"`
	EndsAt    time.Time `json:"ends_at" db:"ends_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ActiveAt reports whether the discount covers the given instant.
func (d *Discount) ActiveAt(t time.Time) bool {
	return !t.Before(d.StartsAt) && t.Before(d.EndsAt)
}

// MenuDiscount links a discount to a menu item. A (menu, discount) pair is
// unique; inserting the same pair twice is a conflict.
type MenuDiscount struct {
	ID         uuid.UUID `json:"id" db:"id"`
	MenuID     uuid.UUID `json:"menu_id" db:"menu_id"`
	DiscountID uuid.UUID `json:"discount_id" db:"discount_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
