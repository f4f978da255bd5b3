package services

import (
	"context"
	"time"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock repositories shared by the service tests.

type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) Create(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetByVendorAndID(ctx context.Context, vendorID, id uuid.UUID) (*models.MenuItem, error) {
	args := m.Called(ctx, vendorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.MenuItem, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).([]*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Search(ctx context.Context, filter *models.MenuSearchFilter) ([]*models.MenuItem, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*models.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *models.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	args := m.Called(ctx, vendorID, id)
	return args.Error(0)
}

type MockDiscountRepository struct {
	mock.Mock
}

func (m *MockDiscountRepository) Create(ctx context.Context, discount *models.Discount) error {
	args := m.Called(ctx, discount)
	return args.Error(0)
}

func (m *MockDiscountRepository) GetByVendorAndID(ctx context.Context, vendorID, id uuid.UUID) (*models.Discount, error) {
	args := m.Called(ctx, vendorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Discount), args.Error(1)
}

func (m *MockDiscountRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Discount, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).([]*models.Discount), args.Error(1)
}

func (m *MockDiscountRepository) Update(ctx context.Context, discount *models.Discount) error {
	args := m.Called(ctx, discount)
	return args.Error(0)
}

func (m *MockDiscountRepository) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	args := m.Called(ctx, vendorID, id)
	return args.Error(0)
}

func (m *MockDiscountRepository) LinkMenu(ctx context.Context, link *models.MenuDiscount) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockDiscountRepository) UnlinkMenu(ctx context.Context, menuID, discountID uuid.UUID) error {
	args := m.Called(ctx, menuID, discountID)
	return args.Error(0)
}

func (m *MockDiscountRepository) ListByMenu(ctx context.Context, menuID uuid.UUID) ([]*models.Discount, error) {
	args := m.Called(ctx, menuID)
	return args.Get(0).([]*models.Discount), args.Error(1)
}

func (m *MockDiscountRepository) ActiveForMenu(ctx context.Context, menuID uuid.UUID, at time.Time) (*models.Discount, error) {
	args := m.Called(ctx, menuID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Discount), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderItem) error {
	args := m.Called(ctx, order, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error) {
	args := m.Called(ctx, studentID, status)
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error) {
	args := m.Called(ctx, vendorID, status)
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByStudentAndRange(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]*models.Order, error) {
	args := m.Called(ctx, studentID, start, end)
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByVendorAndRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]*models.Order, error) {
	args := m.Called(ctx, vendorID, start, end)
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) ItemsForVendorRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]*models.OrderItem, error) {
	args := m.Called(ctx, vendorID, start, end)
	return args.Get(0).([]*models.OrderItem), args.Error(1)
}

type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) List(ctx context.Context) ([]*models.Vendor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*models.Vendor), args.Error(1)
}

func (m *MockVendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Student, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) List(ctx context.Context, limit, offset int) ([]*models.Student, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Student), args.Error(1)
}

func (m *MockStudentRepository) Update(ctx context.Context, student *models.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetMenuItem(ctx context.Context, menuID uuid.UUID) (*models.MenuItem, error) {
	args := m.Called(ctx, menuID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MenuItem), args.Error(1)
}

func (m *MockCacheService) SetMenuItem(ctx context.Context, item *models.MenuItem, ttl time.Duration) error {
	args := m.Called(ctx, item, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteMenuItem(ctx context.Context, menuID uuid.UUID) error {
	args := m.Called(ctx, menuID)
	return args.Error(0)
}

func (m *MockCacheService) GetMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int, dst any) error {
	args := m.Called(ctx, vendorID, month, year, dst)
	return args.Error(0)
}

func (m *MockCacheService) SetMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int, report any, ttl time.Duration) error {
	args := m.Called(ctx, vendorID, month, year, report, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int) error {
	args := m.Called(ctx, vendorID, month, year)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateVendor(ctx context.Context, vendorID uuid.UUID) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
