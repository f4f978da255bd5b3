package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kantinku/internal/common"
	"kantinku/internal/models"
	"kantinku/internal/repositories"

	"github.com/google/uuid"
)

type DiscountServiceInterface interface {
	CreateDiscount(ctx context.Context, vendorID uuid.UUID, discount *models.Discount) error
	GetDiscount(ctx context.Context, vendorID, discountID uuid.UUID) (*models.Discount, error)
	ListDiscounts(ctx context.Context, vendorID uuid.UUID) ([]*models.Discount, error)
	UpdateDiscount(ctx context.Context, vendorID uuid.UUID, discount *models.Discount) error
	DeleteDiscount(ctx context.Context, vendorID, discountID uuid.UUID) error

	LinkMenu(ctx context.Context, vendorID, discountID, menuID uuid.UUID) error
	UnlinkMenu(ctx context.Context, vendorID, discountID, menuID uuid.UUID) error
	ListMenuDiscounts(ctx context.Context, menuID uuid.UUID) ([]*models.Discount, error)
}

type discountService struct {
	discountRepo repositories.DiscountRepository
	menuRepo     repositories.MenuRepository
}

func NewDiscountService(discountRepo repositories.DiscountRepository, menuRepo repositories.MenuRepository) DiscountServiceInterface {
	return &discountService{
		discountRepo: discountRepo,
		menuRepo:     menuRepo,
	}
}

func (s *discountService) validate(discount *models.Discount) error {
	if err := common.ValidateRequiredString(discount.Name, "name"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := common.ValidatePercent(discount.Percent, "percent"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := common.ValidateDiscountWindow(discount.StartsAt, discount.EndsAt); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *discountService) CreateDiscount(ctx context.Context, vendorID uuid.UUID, discount *models.Discount) error {
	if err := s.validate(discount); err != nil {
		return err
	}
	if discount.ID == uuid.Nil {
		discount.ID = uuid.New()
	}
	discount.VendorID = vendorID
	discount.Name = strings.TrimSpace(discount.Name)
	return s.discountRepo.Create(ctx, discount)
}

func (s *discountService) GetDiscount(ctx context.Context, vendorID, discountID uuid.UUID) (*models.Discount, error) {
	discount, err := s.discountRepo.GetByVendorAndID(ctx, vendorID, discountID)
	if err != nil {
		return nil, err
	}
	if discount == nil {
		return nil, ErrNotFound
	}
	return discount, nil
}

func (s *discountService) ListDiscounts(ctx context.Context, vendorID uuid.UUID) ([]*models.Discount, error) {
	return s.discountRepo.ListByVendor(ctx, vendorID)
}

func (s *discountService) UpdateDiscount(ctx context.Context, vendorID uuid.UUID, discount *models.Discount) error {
	if err := s.validate(discount); err != nil {
		return err
	}
	existing, err := s.discountRepo.GetByVendorAndID(ctx, vendorID, discount.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	discount.VendorID = vendorID
	discount.Name = strings.TrimSpace(discount.Name)
	return s.discountRepo.Update(ctx, discount)
}

func (s *discountService) DeleteDiscount(ctx context.Context, vendorID, discountID uuid.UUID) error {
	existing, err := s.discountRepo.GetByVendorAndID(ctx, vendorID, discountID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return s.discountRepo.Delete(ctx, vendorID, discountID)
}

// LinkMenu attaches a discount to a menu item. Both must belong to the
// calling vendor; linking the same pair twice is a conflict.
func (s *discountService) LinkMenu(ctx context.Context, vendorID, discountID, menuID uuid.UUID) error {
	discount, err := s.discountRepo.GetByVendorAndID(ctx, vendorID, discountID)
	if err != nil {
		return err
	}
	if discount == nil {
		return ErrNotFound
	}
	menu, err := s.menuRepo.GetByVendorAndID(ctx, vendorID, menuID)
	if err != nil {
		return err
	}
	if menu == nil {
		return ErrNotFound
	}

	link := &models.MenuDiscount{
		ID:         uuid.New(),
		MenuID:     menuID,
		DiscountID: discountID,
	}
	if err := s.discountRepo.LinkMenu(ctx, link); err != nil {
		if errors.Is(err, repositories.ErrDuplicateLink) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *discountService) UnlinkMenu(ctx context.Context, vendorID, discountID, menuID uuid.UUID) error {
	discount, err := s.discountRepo.GetByVendorAndID(ctx, vendorID, discountID)
	if err != nil {
		return err
	}
	if discount == nil {
		return ErrNotFound
	}
	return s.discountRepo.UnlinkMenu(ctx, menuID, discountID)
}

func (s *discountService) ListMenuDiscounts(ctx context.Context, menuID uuid.UUID) ([]*models.Discount, error) {
	return s.discountRepo.ListByMenu(ctx, menuID)
}
