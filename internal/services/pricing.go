package services

import (
	"context"
	"time"

	"kantinku/internal/models"
	"kantinku/internal/repositories"

	"github.com/google/uuid"
)

// PricingServiceInterface resolves the effective unit price of a menu item at
// a point in time, taking active discounts into account.
type PricingServiceInterface interface {
	ResolvePrice(ctx context.Context, menuID uuid.UUID, at time.Time) (*PriceQuote, error)
	QuoteItem(ctx context.Context, item *models.MenuItem, at time.Time) (*PriceQuote, error)
}

// PriceQuote is the resolved price of one menu item at one instant.
type PriceQuote struct {
	MenuID         uuid.UUID        `json:"menu_id"`
	UnitPrice      int64            `json:"unit_price"`
	EffectivePrice int64            `json:"effective_price"`
	Discount       *models.Discount `json:"discount,omitempty"`
}

type pricingService struct {
	menuRepo     repositories.MenuRepository
	discountRepo repositories.DiscountRepository
}

func NewPricingService(menuRepo repositories.MenuRepository, discountRepo repositories.DiscountRepository) PricingServiceInterface {
	return &pricingService{
		menuRepo:     menuRepo,
		discountRepo: discountRepo,
	}
}

// ApplyDiscount computes the discounted unit price in whole rupiah, rounding
// half up. A nil discount leaves the price unchanged.
func ApplyDiscount(unitPrice int64, discount *models.Discount) int64 {
	if discount == nil {
		return unitPrice
	}
	return (unitPrice*int64(100-discount.Percent) + 50) / 100
}

// ResolvePrice loads the item and its active discount (if any) and returns
// the effective unit price charged at the given instant.
func (s *pricingService) ResolvePrice(ctx context.Context, menuID uuid.UUID, at time.Time) (*PriceQuote, error) {
	item, err := s.menuRepo.GetByID(ctx, menuID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return s.QuoteItem(ctx, item, at)
}

// QuoteItem quotes an already-loaded item, looking up its active discount at
// the given instant.
func (s *pricingService) QuoteItem(ctx context.Context, item *models.MenuItem, at time.Time) (*PriceQuote, error) {
	discount, err := s.discountRepo.ActiveForMenu(ctx, item.ID, at)
	if err != nil {
		return nil, err
	}

	return &PriceQuote{
		MenuID:         item.ID,
		UnitPrice:      item.UnitPrice,
		EffectivePrice: ApplyDiscount(item.UnitPrice, discount),
		Discount:       discount,
	}, nil
}
