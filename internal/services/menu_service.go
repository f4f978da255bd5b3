package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"kantinku/internal/caching"
	"kantinku/internal/common"
	"kantinku/internal/models"
	"kantinku/internal/repositories"

	"github.com/google/uuid"
)

const menuCacheTTL = 10 * time.Minute

// MenuView is a menu item decorated with its currently effective price for
// the public browsing endpoints.
type MenuView struct {
	*models.MenuItem
	EffectivePrice int64            `json:"effective_price"`
	Discount       *models.Discount `json:"discount,omitempty"`
}

type MenuServiceInterface interface {
	CreateMenu(ctx context.Context, vendorID uuid.UUID, item *models.MenuItem) error
	GetMenu(ctx context.Context, menuID uuid.UUID) (*MenuView, error)
	ListVendorMenus(ctx context.Context, vendorID uuid.UUID) ([]*models.MenuItem, error)
	BrowseMenus(ctx context.Context, filter *models.MenuSearchFilter) ([]*MenuView, error)
	UpdateMenu(ctx context.Context, vendorID uuid.UUID, item *models.MenuItem) error
	DeleteMenu(ctx context.Context, vendorID, menuID uuid.UUID) error
	UploadPhoto(ctx context.Context, vendorID, menuID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (string, error)
}

type menuService struct {
	menuRepo repositories.MenuRepository
	pricing  PricingServiceInterface
	cache    caching.CacheService
	storage  MinioService
}

func NewMenuService(menuRepo repositories.MenuRepository, pricing PricingServiceInterface, cache caching.CacheService, storage MinioService) MenuServiceInterface {
	return &menuService{
		menuRepo: menuRepo,
		pricing:  pricing,
		cache:    cache,
		storage:  storage,
	}
}

func (s *menuService) validate(item *models.MenuItem) error {
	if err := common.ValidateRequiredString(item.Name, "name"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := common.ValidatePrice(item.UnitPrice, "unit_price"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := common.ValidateCategory(item.Category); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func (s *menuService) CreateMenu(ctx context.Context, vendorID uuid.UUID, item *models.MenuItem) error {
	if err := s.validate(item); err != nil {
		return err
	}
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	item.VendorID = vendorID
	item.Name = strings.TrimSpace(item.Name)
	return s.menuRepo.Create(ctx, item)
}

func (s *menuService) GetMenu(ctx context.Context, menuID uuid.UUID) (*MenuView, error) {
	item, err := s.cache.GetMenuItem(ctx, menuID)
	if err != nil {
		item, err = s.menuRepo.GetByID(ctx, menuID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, ErrNotFound
		}
		// Best effort: a failed cache write never fails the read.
		_ = s.cache.SetMenuItem(ctx, item, menuCacheTTL)
	}
	return s.decorate(ctx, item)
}

func (s *menuService) ListVendorMenus(ctx context.Context, vendorID uuid.UUID) ([]*models.MenuItem, error) {
	return s.menuRepo.ListByVendor(ctx, vendorID)
}

func (s *menuService) BrowseMenus(ctx context.Context, filter *models.MenuSearchFilter) ([]*MenuView, error) {
	if filter.Category != nil {
		if err := common.ValidateCategory(*filter.Category); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	items, err := s.menuRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]*MenuView, 0, len(items))
	for _, item := range items {
		view, err := s.decorate(ctx, item)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *menuService) decorate(ctx context.Context, item *models.MenuItem) (*MenuView, error) {
	quote, err := s.pricing.QuoteItem(ctx, item, time.Now())
	if err != nil {
		return nil, err
	}
	return &MenuView{
		MenuItem:       item,
		EffectivePrice: quote.EffectivePrice,
		Discount:       quote.Discount,
	}, nil
}

func (s *menuService) UpdateMenu(ctx context.Context, vendorID uuid.UUID, item *models.MenuItem) error {
	if err := s.validate(item); err != nil {
		return err
	}
	existing, err := s.menuRepo.GetByVendorAndID(ctx, vendorID, item.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	item.VendorID = vendorID
	item.Name = strings.TrimSpace(item.Name)
	if item.Photo == nil {
		item.Photo = existing.Photo
	}
	if err := s.menuRepo.Update(ctx, item); err != nil {
		return err
	}
	return s.cache.DeleteMenuItem(ctx, item.ID)
}

func (s *menuService) DeleteMenu(ctx context.Context, vendorID, menuID uuid.UUID) error {
	existing, err := s.menuRepo.GetByVendorAndID(ctx, vendorID, menuID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	if err := s.menuRepo.Delete(ctx, vendorID, menuID); err != nil {
		return err
	}
	return s.cache.DeleteMenuItem(ctx, menuID)
}

// UploadPhoto stores a menu photo in object storage and records the object
// name on the item. The stored name, not a URL, goes in the database; reads
// presign on demand.
func (s *menuService) UploadPhoto(ctx context.Context, vendorID, menuID uuid.UUID, filename, contentType string, reader io.Reader, size int64) (string, error) {
	item, err := s.menuRepo.GetByVendorAndID(ctx, vendorID, menuID)
	if err != nil {
		return "", err
	}
	if item == nil {
		return "", ErrNotFound
	}

	objectName := fmt.Sprintf("%s/%s-%s", vendorID, menuID, filename)
	if err := s.storage.Upload(ctx, BucketMenuPhotos, objectName, contentType, reader, size); err != nil {
		return "", err
	}

	item.Photo = &objectName
	if err := s.menuRepo.Update(ctx, item); err != nil {
		return "", err
	}
	if err := s.cache.DeleteMenuItem(ctx, menuID); err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, BucketMenuPhotos, objectName, 24*time.Hour)
}
