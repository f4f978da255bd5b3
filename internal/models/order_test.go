package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusUnconfirmed, StatusCooking, true},
		{StatusCooking, StatusDelivering, true},
		{StatusDelivering, StatusArrived, true},

		// no skipping
		{StatusUnconfirmed, StatusDelivering, false},
		{StatusUnconfirmed, StatusArrived, false},
		{StatusCooking, StatusArrived, false},

		// no going back
		{StatusCooking, StatusUnconfirmed, false},
		{StatusArrived, StatusDelivering, false},

		// no self-loop, arrived is terminal
		{StatusCooking, StatusCooking, false},
		{StatusArrived, StatusArrived, false},

		// unknown states
		{OrderStatus("cancelled"), StatusCooking, false},
		{StatusCooking, OrderStatus("paid"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []OrderStatus{StatusUnconfirmed, StatusCooking, StatusDelivering, StatusArrived} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus(OrderStatus("cancelled")))
	assert.False(t, ValidStatus(OrderStatus("")))
}

func TestOrderTotal(t *testing.T) {
	order := &Order{
		Items: []*OrderItem{
			{Quantity: 2, FrozenPrice: 13500},
			{Quantity: 3, FrozenPrice: 4250},
		},
	}
	assert.Equal(t, int64(27000), order.Items[0].Subtotal())
	assert.Equal(t, int64(39750), order.Total())
}

func TestOrderTotal_NoItems(t *testing.T) {
	assert.Equal(t, int64(0), (&Order{}).Total())
}
