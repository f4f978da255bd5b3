package services

import (
	"context"
	"testing"

	"kantinku/internal/caching"
	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func menuFixture() (*MockMenuRepository, *MockDiscountRepository, *MockCacheService, MenuServiceInterface) {
	menuRepo := new(MockMenuRepository)
	discountRepo := new(MockDiscountRepository)
	cache := new(MockCacheService)
	pricing := NewPricingService(menuRepo, discountRepo)
	return menuRepo, discountRepo, cache, NewMenuService(menuRepo, pricing, cache, nil)
}

func TestGetMenu_DecoratesWithEffectivePrice(t *testing.T) {
	menuRepo, discountRepo, cache, svc := menuFixture()

	menuID := uuid.New()
	item := &models.MenuItem{ID: menuID, Name: "Nasi Goreng", UnitPrice: 15000}
	discount := &models.Discount{ID: uuid.New(), Percent: 20}

	cache.On("GetMenuItem", mock.Anything, menuID).Return(nil, caching.ErrCacheMiss)
	cache.On("SetMenuItem", mock.Anything, item, mock.AnythingOfType("time.Duration")).Return(nil)
	menuRepo.On("GetByID", mock.Anything, menuID).Return(item, nil)
	discountRepo.On("ActiveForMenu", mock.Anything, menuID, mock.AnythingOfType("time.Time")).Return(discount, nil)

	view, err := svc.GetMenu(context.Background(), menuID)
	assert.NoError(t, err)
	assert.Equal(t, int64(15000), view.UnitPrice)
	assert.Equal(t, int64(12000), view.EffectivePrice)
	assert.Equal(t, discount, view.Discount)
}

func TestGetMenu_CacheHitSkipsRepo(t *testing.T) {
	menuRepo, discountRepo, cache, svc := menuFixture()

	menuID := uuid.New()
	item := &models.MenuItem{ID: menuID, Name: "Es Teh", UnitPrice: 5000}

	cache.On("GetMenuItem", mock.Anything, menuID).Return(item, nil)
	discountRepo.On("ActiveForMenu", mock.Anything, menuID, mock.AnythingOfType("time.Time")).Return(nil, nil)

	view, err := svc.GetMenu(context.Background(), menuID)
	assert.NoError(t, err)
	assert.Equal(t, int64(5000), view.EffectivePrice)
	menuRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestBrowseMenus_AppliesDiscountPerItem(t *testing.T) {
	menuRepo, discountRepo, _, svc := menuFixture()

	discounted := &models.MenuItem{ID: uuid.New(), Name: "Soto", UnitPrice: 10000}
	plain := &models.MenuItem{ID: uuid.New(), Name: "Kerupuk", UnitPrice: 2000}
	discount := &models.Discount{ID: uuid.New(), Percent: 10}

	filter := &models.MenuSearchFilter{}
	menuRepo.On("Search", mock.Anything, filter).Return([]*models.MenuItem{discounted, plain}, nil)
	discountRepo.On("ActiveForMenu", mock.Anything, discounted.ID, mock.AnythingOfType("time.Time")).Return(discount, nil)
	discountRepo.On("ActiveForMenu", mock.Anything, plain.ID, mock.AnythingOfType("time.Time")).Return(nil, nil)

	views, err := svc.BrowseMenus(context.Background(), filter)
	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, int64(9000), views[0].EffectivePrice)
	assert.Equal(t, int64(2000), views[1].EffectivePrice)
	assert.Nil(t, views[1].Discount)
}

func TestBrowseMenus_BadCategoryRejected(t *testing.T) {
	_, _, _, svc := menuFixture()

	bad := "SNACK"
	_, err := svc.BrowseMenus(context.Background(), &models.MenuSearchFilter{Category: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
