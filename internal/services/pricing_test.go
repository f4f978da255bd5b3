package services

import (
	"context"
	"testing"
	"time"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice int64
		percent   int
		want      int64
	}{
		{"no rounding needed", 10000, 10, 9000},
		{"exact result", 15000, 15, 12750},
		{"half rounds up", 150, 3, 146},        // 145.5 -> 146
		{"fraction rounds up", 333, 10, 300},   // 299.7 -> 300
		{"fraction rounds down", 333, 25, 250}, // 249.75 -> 250
		{"full discount", 5000, 100, 0},
		{"one percent", 101, 1, 100}, // 99.99 -> 100
		{"small price", 1, 50, 1},    // 0.5 -> 1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount := &models.Discount{Percent: tt.percent}
			assert.Equal(t, tt.want, ApplyDiscount(tt.unitPrice, discount))
		})
	}
}

func TestApplyDiscount_NilDiscount(t *testing.T) {
	assert.Equal(t, int64(12345), ApplyDiscount(12345, nil))
}

func TestResolvePrice(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	discountRepo := new(MockDiscountRepository)
	svc := NewPricingService(menuRepo, discountRepo)

	menuID := uuid.New()
	now := time.Now()
	item := &models.MenuItem{ID: menuID, Name: "Nasi Goreng", UnitPrice: 15000}
	discount := &models.Discount{ID: uuid.New(), Percent: 20}

	menuRepo.On("GetByID", mock.Anything, menuID).Return(item, nil)
	discountRepo.On("ActiveForMenu", mock.Anything, menuID, now).Return(discount, nil)

	quote, err := svc.ResolvePrice(context.Background(), menuID, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(15000), quote.UnitPrice)
	assert.Equal(t, int64(12000), quote.EffectivePrice)
	assert.Equal(t, discount, quote.Discount)
}

func TestQuoteItem_NoDiscountKeepsUnitPrice(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	discountRepo := new(MockDiscountRepository)
	svc := NewPricingService(menuRepo, discountRepo)

	item := &models.MenuItem{ID: uuid.New(), Name: "Bakso", UnitPrice: 12000}
	now := time.Now()
	discountRepo.On("ActiveForMenu", mock.Anything, item.ID, now).Return(nil, nil)

	quote, err := svc.QuoteItem(context.Background(), item, now)
	assert.NoError(t, err)
	assert.Equal(t, int64(12000), quote.EffectivePrice)
	assert.Nil(t, quote.Discount)
	// No item reload: the loaded struct is quoted as-is.
	menuRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestResolvePrice_MenuMissing(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	discountRepo := new(MockDiscountRepository)
	svc := NewPricingService(menuRepo, discountRepo)

	menuID := uuid.New()
	menuRepo.On("GetByID", mock.Anything, menuID).Return(nil, nil)

	_, err := svc.ResolvePrice(context.Background(), menuID, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}
