package models

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a canteen stall ("stan"). It owns menu items and discounts and
// fulfills orders placed against it.
type Vendor struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	StallName string    `json:"stall_name" db:"stall_name"`
	OwnerName string    `json:"owner_name" db:"owner_name"`
	Phone     *string   `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
