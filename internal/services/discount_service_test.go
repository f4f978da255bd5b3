package services

import (
	"context"
	"testing"
	"time"

	"kantinku/internal/models"
	"kantinku/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discountFixture() (*MockDiscountRepository, *MockMenuRepository, DiscountServiceInterface) {
	discountRepo := new(MockDiscountRepository)
	menuRepo := new(MockMenuRepository)
	return discountRepo, menuRepo, NewDiscountService(discountRepo, menuRepo)
}

func TestCreateDiscount_InvalidWindow(t *testing.T) {
	_, _, svc := discountFixture()

	now := time.Now()
	err := svc.CreateDiscount(context.Background(), uuid.New(), &models.Discount{
		Name:     "Promo Terbalik",
		Percent:  10,
		StartsAt: now,
		EndsAt:   now.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateDiscount_PercentBounds(t *testing.T) {
	_, _, svc := discountFixture()
	now := time.Now()

	for _, percent := range []int{0, -5, 101} {
		err := svc.CreateDiscount(context.Background(), uuid.New(), &models.Discount{
			Name:     "Promo",
			Percent:  percent,
			StartsAt: now,
			EndsAt:   now.Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "percent %d should be rejected", percent)
	}
}

func TestLinkMenu_DuplicateIsConflict(t *testing.T) {
	discountRepo, menuRepo, svc := discountFixture()

	vendorID := uuid.New()
	discountID := uuid.New()
	menuID := uuid.New()

	discountRepo.On("GetByVendorAndID", mock.Anything, vendorID, discountID).
		Return(&models.Discount{ID: discountID, VendorID: vendorID}, nil)
	menuRepo.On("GetByVendorAndID", mock.Anything, vendorID, menuID).
		Return(&models.MenuItem{ID: menuID, VendorID: vendorID}, nil)
	discountRepo.On("LinkMenu", mock.Anything, mock.AnythingOfType("*models.MenuDiscount")).
		Return(repositories.ErrDuplicateLink)

	err := svc.LinkMenu(context.Background(), vendorID, discountID, menuID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLinkMenu_ForeignMenuRejected(t *testing.T) {
	discountRepo, menuRepo, svc := discountFixture()

	vendorID := uuid.New()
	discountID := uuid.New()
	menuID := uuid.New()

	discountRepo.On("GetByVendorAndID", mock.Anything, vendorID, discountID).
		Return(&models.Discount{ID: discountID, VendorID: vendorID}, nil)
	// The menu belongs to another stall, so the scoped lookup misses.
	menuRepo.On("GetByVendorAndID", mock.Anything, vendorID, menuID).Return(nil, nil)

	err := svc.LinkMenu(context.Background(), vendorID, discountID, menuID)
	assert.ErrorIs(t, err, ErrNotFound)
	discountRepo.AssertNotCalled(t, "LinkMenu", mock.Anything, mock.Anything)
}

func TestDeleteDiscount_Missing(t *testing.T) {
	discountRepo, _, svc := discountFixture()

	vendorID := uuid.New()
	discountID := uuid.New()
	discountRepo.On("GetByVendorAndID", mock.Anything, vendorID, discountID).Return(nil, nil)

	err := svc.DeleteDiscount(context.Background(), vendorID, discountID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiscountActiveAt_HalfOpenWindow(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	d := &models.Discount{StartsAt: start, EndsAt: end}

	assert.False(t, d.ActiveAt(start.Add(-time.Second)))
	assert.True(t, d.ActiveAt(start))
	assert.True(t, d.ActiveAt(end.Add(-time.Second)))
	assert.False(t, d.ActiveAt(end))
}
