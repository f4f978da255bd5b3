package analytics

import (
	"context"
	"time"

	"kantinku/internal/caching"
	"kantinku/internal/repositories"

	"github.com/google/uuid"
)

const reportCacheTTL = 5 * time.Minute

// BestSeller is the top-selling menu item of a reporting period.
type BestSeller struct {
	MenuID       uuid.UUID `json:"menu_id"`
	MenuName     string    `json:"menu_name"`
	QuantitySold int       `json:"quantity_sold"`
	Revenue      int64     `json:"revenue"`
}

// MonthlyReport aggregates one vendor's sales for one calendar month. All
// amounts come from the frozen prices captured at order time, so the report
// is stable under later price and discount changes.
type MonthlyReport struct {
	VendorID    uuid.UUID   `json:"vendor_id"`
	Month       int         `json:"month"`
	Year        int         `json:"year"`
	TotalOrders int         `json:"total_orders"`
	TotalItems  int         `json:"total_items"`
	TotalIncome int64       `json:"total_income"`
	BestSeller  *BestSeller `json:"best_seller,omitempty"`
}

type Service interface {
	VendorMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int) (*MonthlyReport, error)
	RefreshVendorMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int) (*MonthlyReport, error)
}

type service struct {
	orderRepo repositories.OrderRepository
	cache     caching.CacheService
}

func NewService(orderRepo repositories.OrderRepository, cache caching.CacheService) Service {
	return &service{
		orderRepo: orderRepo,
		cache:     cache,
	}
}

// VendorMonthlyReport returns the cached report when present, computing and
// caching it otherwise.
func (s *service) VendorMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int) (*MonthlyReport, error) {
	cached := &MonthlyReport{}
	if err := s.cache.GetMonthlyReport(ctx, vendorID, month, year, cached); err == nil {
		return cached, nil
	}
	return s.RefreshVendorMonthlyReport(ctx, vendorID, month, year)
}

// RefreshVendorMonthlyReport recomputes the report from the order store and
// overwrites the cached copy.
func (s *service) RefreshVendorMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int) (*MonthlyReport, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	orders, err := s.orderRepo.ListByVendorAndRange(ctx, vendorID, start, end)
	if err != nil {
		return nil, err
	}
	items, err := s.orderRepo.ItemsForVendorRange(ctx, vendorID, start, end)
	if err != nil {
		return nil, err
	}

	report := &MonthlyReport{
		VendorID:    vendorID,
		Month:       month,
		Year:        year,
		TotalOrders: len(orders),
	}

	type counter struct {
		name     string
		quantity int
		revenue  int64
	}
	counters := map[uuid.UUID]*counter{}
	for _, item := range items {
		report.TotalItems += item.Quantity
		report.TotalIncome += item.Subtotal()

		c, ok := counters[item.MenuID]
		if !ok {
			c = &counter{name: item.MenuName}
			counters[item.MenuID] = c
		}
		c.quantity += item.Quantity
		c.revenue += item.Subtotal()
	}

	// Best seller is the item with the highest quantity sold. Ties break
	// deterministically on the lexically smallest menu ID, so the same data
	// always yields the same report.
	var bestID uuid.UUID
	var best *counter
	for menuID, c := range counters {
		if best == nil || c.quantity > best.quantity ||
			(c.quantity == best.quantity && menuID.String() < bestID.String()) {
			bestID = menuID
			best = c
		}
	}
	if best != nil {
		report.BestSeller = &BestSeller{
			MenuID:       bestID,
			MenuName:     best.name,
			QuantitySold: best.quantity,
			Revenue:      best.revenue,
		}
	}

	// Cache write failures never fail the report itself.
	_ = s.cache.SetMonthlyReport(ctx, vendorID, month, year, report, reportCacheTTL)
	return report, nil
}
