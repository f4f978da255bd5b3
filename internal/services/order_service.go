package services

import (
	"context"
	"fmt"
	"time"

	"kantinku/internal/caching"
	"kantinku/internal/models"
	"kantinku/internal/repositories"

	"github.com/google/uuid"
)

// OrderLine is one requested line of a new order.
type OrderLine struct {
	MenuID   uuid.UUID `json:"menu_id"`
	Quantity int       `json:"quantity"`
}

// Receipt is the immutable proof of purchase for one order. Every amount
// comes from the frozen prices captured when the order was placed.
type Receipt struct {
	OrderID     uuid.UUID          `json:"order_id"`
	StallName   string             `json:"stall_name"`
	StudentName string             `json:"student_name"`
	Status      models.OrderStatus `json:"status"`
	PlacedAt    time.Time          `json:"placed_at"`
	Items       []*ReceiptLine     `json:"items"`
	Total       int64              `json:"total"`
}

// ReceiptLine is one order item as it appears on the receipt.
type ReceiptLine struct {
	MenuName  string `json:"menu_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Subtotal  int64  `json:"subtotal"`
}

type OrderServiceInterface interface {
	PlaceOrder(ctx context.Context, studentID, vendorID uuid.UUID, lines []OrderLine) (*models.Order, error)
	GetStudentOrder(ctx context.Context, studentID, orderID uuid.UUID) (*models.Order, error)
	GetVendorOrder(ctx context.Context, vendorID, orderID uuid.UUID) (*models.Order, error)
	ListStudentOrders(ctx context.Context, studentID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error)
	ListVendorOrders(ctx context.Context, vendorID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error)
	StudentMonthlyHistory(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]*models.Order, error)
	VendorMonthlyHistory(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, vendorID, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error)
	BuildReceipt(ctx context.Context, studentID, orderID uuid.UUID) (*Receipt, error)
}

type orderService struct {
	orderRepo   repositories.OrderRepository
	menuRepo    repositories.MenuRepository
	pricing     PricingServiceInterface
	vendorRepo  repositories.VendorRepository
	studentRepo repositories.StudentRepository
	cache       caching.CacheService
}

func NewOrderService(orderRepo repositories.OrderRepository, menuRepo repositories.MenuRepository, pricing PricingServiceInterface, vendorRepo repositories.VendorRepository, studentRepo repositories.StudentRepository, cache caching.CacheService) OrderServiceInterface {
	return &orderService{
		orderRepo:   orderRepo,
		menuRepo:    menuRepo,
		pricing:     pricing,
		vendorRepo:  vendorRepo,
		studentRepo: studentRepo,
		cache:       cache,
	}
}

// PlaceOrder creates an order against a single vendor. Every line is resolved
// through the vendor's own catalog: an item that exists under another vendor
// is treated as missing. Unit prices are computed once, at this instant, with
// the active discount applied, and stored frozen on each item. The order and
// its items are persisted atomically; any bad line aborts the whole order.
func (s *orderService) PlaceOrder(ctx context.Context, studentID, vendorID uuid.UUID, lines []OrderLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}

	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	order := &models.Order{
		ID:        uuid.New(),
		StudentID: studentID,
		VendorID:  vendorID,
		Status:    models.StatusUnconfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	items := make([]*models.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
		}

		menu, err := s.menuRepo.GetByVendorAndID(ctx, vendorID, line.MenuID)
		if err != nil {
			return nil, err
		}
		if menu == nil {
			return nil, ErrNotFound
		}

		quote, err := s.pricing.QuoteItem(ctx, menu, now)
		if err != nil {
			return nil, err
		}

		items = append(items, &models.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			MenuID:      menu.ID,
			MenuName:    menu.Name,
			Quantity:    line.Quantity,
			FrozenPrice: quote.EffectivePrice,
			CreatedAt:   now,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		return nil, err
	}
	order.Items = items

	// The vendor's cached report for this month is now stale. Dropping it is
	// best effort; the next read recomputes either way.
	_ = s.cache.DeleteMonthlyReport(ctx, vendorID, int(now.Month()), now.Year())
	return order, nil
}

func (s *orderService) GetStudentOrder(ctx context.Context, studentID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.StudentID != studentID {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *orderService) GetVendorOrder(ctx context.Context, vendorID, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.VendorID != vendorID {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *orderService) ListStudentOrders(ctx context.Context, studentID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error) {
	if status != nil && !models.ValidStatus(*status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
	}
	return s.orderRepo.ListByStudent(ctx, studentID, status)
}

func (s *orderService) ListVendorOrders(ctx context.Context, vendorID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error) {
	if status != nil && !models.ValidStatus(*status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *status)
	}
	return s.orderRepo.ListByVendor(ctx, vendorID, status)
}

func (s *orderService) StudentMonthlyHistory(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]*models.Order, error) {
	return s.orderRepo.ListByStudentAndRange(ctx, studentID, start, end)
}

func (s *orderService) VendorMonthlyHistory(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]*models.Order, error) {
	return s.orderRepo.ListByVendorAndRange(ctx, vendorID, start, end)
}

// UpdateStatus advances an order one step along the lifecycle. Only the
// owning vendor may move it, and only forward, one state at a time.
func (s *orderService) UpdateStatus(ctx context.Context, vendorID, orderID uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.VendorID != vendorID {
		return nil, ErrForbidden
	}
	if !models.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, status)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	return order, nil
}

// BuildReceipt assembles the receipt for one of the student's own orders.
func (s *orderService) BuildReceipt(ctx context.Context, studentID, orderID uuid.UUID) (*Receipt, error) {
	order, err := s.GetStudentOrder(ctx, studentID, orderID)
	if err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.GetByID(ctx, order.VendorID)
	if err != nil {
		return nil, err
	}
	student, err := s.studentRepo.GetByID(ctx, order.StudentID)
	if err != nil {
		return nil, err
	}

	receipt := &Receipt{
		OrderID:  order.ID,
		Status:   order.Status,
		PlacedAt: order.CreatedAt,
		Total:    order.Total(),
	}
	if vendor != nil {
		receipt.StallName = vendor.StallName
	}
	if student != nil {
		receipt.StudentName = student.Name
	}
	for _, item := range order.Items {
		receipt.Items = append(receipt.Items, &ReceiptLine{
			MenuName:  item.MenuName,
			Quantity:  item.Quantity,
			UnitPrice: item.FrozenPrice,
			Subtotal:  item.Subtotal(),
		})
	}
	return receipt, nil
}
