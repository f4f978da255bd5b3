package services

import (
	"context"
	"fmt"
	"strings"

	"kantinku/internal/common"
	"kantinku/internal/models"
	"kantinku/internal/repositories"

	"github.com/google/uuid"
)

type VendorServiceInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	List(ctx context.Context) ([]*models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
}

type vendorService struct {
	vendorRepo repositories.VendorRepository
}

func NewVendorService(vendorRepo repositories.VendorRepository) VendorServiceInterface {
	return &vendorService{vendorRepo: vendorRepo}
}

func (s *vendorService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrNotFound
	}
	return vendor, nil
}

func (s *vendorService) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrNotFound
	}
	return vendor, nil
}

func (s *vendorService) List(ctx context.Context) ([]*models.Vendor, error) {
	return s.vendorRepo.List(ctx)
}

func (s *vendorService) Update(ctx context.Context, vendor *models.Vendor) error {
	if err := common.ValidateRequiredString(vendor.StallName, "stall_name"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := common.ValidateRequiredString(vendor.OwnerName, "owner_name"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	existing, err := s.vendorRepo.GetByID(ctx, vendor.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	vendor.StallName = strings.TrimSpace(vendor.StallName)
	vendor.OwnerName = strings.TrimSpace(vendor.OwnerName)
	return s.vendorRepo.Update(ctx, vendor)
}
