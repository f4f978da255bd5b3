package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusUnconfirmed OrderStatus = "unconfirmed"
	StatusCooking     OrderStatus = "cooking"
	StatusDelivering  OrderStatus = "delivering"
	StatusArrived     OrderStatus = "arrived"
)

// statusRank orders the lifecycle linearly: unconfirmed -> cooking ->
// delivering -> arrived. There is no cancellation state.
var statusRank = map[OrderStatus]int{
	StatusUnconfirmed: 0,
	StatusCooking:     1,
	StatusDelivering:  2,
	StatusArrived:     3,
}

// ValidStatus reports whether s names a known lifecycle state.
func ValidStatus(s OrderStatus) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether an order may move from one status to the
// next. Transitions are forward-only and may not skip a state; arrived is
// terminal.
func CanTransition(from, to OrderStatus) bool {
	fr, ok := statusRank[from]
	if !ok {
		return false
	}
	tr, ok := statusRank[to]
	if !ok {
		return false
	}
	return tr == fr+1
}

// Order is one student's purchase from exactly one vendor. Only the status
// field is ever updated after creation; orders are never deleted.
type Order struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	StudentID uuid.UUID   `json:"student_id" db:"student_id"`
	VendorID  uuid.UUID   `json:"vendor_id" db:"vendor_id"`
	Status    OrderStatus `json:"status" db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`

	Items []*OrderItem `json:"items,omitempty"`
}

// OrderItem is one line of an order. FrozenPrice is the unit price actually
// charged, captured at order-creation time; it is never recomputed when the
// menu price or discount later changes.
type OrderItem struct {
	ID          uuid.UUID `json:"id" db:"id"`
	OrderID     uuid.UUID `json:"order_id" db:"order_id"`
	MenuID      uuid.UUID `json:"menu_id" db:"menu_id"`
	MenuName    string    `json:"menu_name" db:"menu_name"`
	Quantity    int       `json:"quantity" db:"quantity"`
	FrozenPrice int64     `json:"frozen_price" db:"frozen_price"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Subtotal is quantity times the frozen unit price.
func (i *OrderItem) Subtotal() int64 {
	return int64(i.Quantity) * i.FrozenPrice
}

// Total sums the subtotals of all loaded items.
func (o *Order) Total() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}
