package repositories

import (
	"context"
	"errors"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error)
	List(ctx context.Context) ([]*models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
}

type vendorRepo struct {
	db Database
}

func NewVendorRepo(db Database) VendorRepository {
	return &vendorRepo{db: db}
}

func (r *vendorRepo) Create(ctx context.Context, vendor *models.Vendor) error {
	query := `
		INSERT INTO vendors (id, user_id, stall_name, owner_name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, vendor.ID, vendor.UserID, vendor.StallName, vendor.OwnerName, vendor.Phone)
	return err
}

func (r *vendorRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	vendor := &models.Vendor{}
	query := `
		SELECT id, user_id, stall_name, owner_name, phone, created_at, updated_at
		FROM vendors
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&vendor.ID, &vendor.UserID, &vendor.StallName, &vendor.OwnerName, &vendor.Phone, &vendor.CreatedAt, &vendor.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return vendor, nil
}

func (r *vendorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error) {
	vendor := &models.Vendor{}
	query := `
		SELECT id, user_id, stall_name, owner_name, phone, created_at, updated_at
		FROM vendors
		WHERE user_id = $1
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(&vendor.ID, &vendor.UserID, &vendor.StallName, &vendor.OwnerName, &vendor.Phone, &vendor.CreatedAt, &vendor.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return vendor, nil
}

func (r *vendorRepo) List(ctx context.Context) ([]*models.Vendor, error) {
	query := `
		SELECT id, user_id, stall_name, owner_name, phone, created_at, updated_at
		FROM vendors
		ORDER BY stall_name ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vendors []*models.Vendor
	for rows.Next() {
		vendor := &models.Vendor{}
		if err := rows.Scan(&vendor.ID, &vendor.UserID, &vendor.StallName, &vendor.OwnerName, &vendor.Phone, &vendor.CreatedAt, &vendor.UpdatedAt); err != nil {
			return nil, err
		}
		vendors = append(vendors, vendor)
	}
	return vendors, rows.Err()
}

func (r *vendorRepo) Update(ctx context.Context, vendor *models.Vendor) error {
	query := `
		UPDATE vendors
		SET stall_name = $1, owner_name = $2, phone = $3, updated_at = NOW()
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, vendor.StallName, vendor.OwnerName, vendor.Phone, vendor.ID)
	return err
}
