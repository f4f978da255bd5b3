package repositories

import (
	"context"
	"errors"
	"time"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateLink is returned when a (menu, discount) pair already exists.
var ErrDuplicateLink = errors.New("menu already linked to this discount")

type DiscountRepository interface {
	Create(ctx context.Context, discount *models.Discount) error
	GetByVendorAndID(ctx context.Context, vendorID, id uuid.UUID) (*models.Discount, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Discount, error)
	Update(ctx context.Context, discount *models.Discount) error
	Delete(ctx context.Context, vendorID, id uuid.UUID) error

	LinkMenu(ctx context.Context, link *models.MenuDiscount) error
	UnlinkMenu(ctx context.Context, menuID, discountID uuid.UUID) error
	ListByMenu(ctx context.Context, menuID uuid.UUID) ([]*models.Discount, error)
	ActiveForMenu(ctx context.Context, menuID uuid.UUID, at time.Time) (*models.Discount, error)
}

type discountRepo struct {
	db Database
}

func NewDiscountRepo(db Database) DiscountRepository {
	return &discountRepo{db: db}
}

const discountColumns = `id, vendor_id, name, percent, starts_at, ends_at, created_at, updated_at`

func (r *discountRepo) Create(ctx context.Context, discount *models.Discount) error {
	query := `
		INSERT INTO discounts (id, vendor_id, name, percent, starts_at, ends_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, discount.ID, discount.VendorID, discount.Name, discount.Percent, discount.StartsAt, discount.EndsAt)
	return err
}

func (r *discountRepo) GetByVendorAndID(ctx context.Context, vendorID, id uuid.UUID) (*models.Discount, error) {
	discount := &models.Discount{}
	query := `SELECT ` + discountColumns + ` FROM discounts WHERE vendor_id = $1 AND id = $2`
	err := r.db.QueryRow(ctx, query, vendorID, id).Scan(&discount.ID, &discount.VendorID, &discount.Name, &discount.Percent, &discount.StartsAt, &discount.EndsAt, &discount.CreatedAt, &discount.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return discount, nil
}

func (r *discountRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.Discount, error) {
	query := `
		SELECT ` + discountColumns + `
		FROM discounts
		WHERE vendor_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDiscounts(rows)
}

func (r *discountRepo) Update(ctx context.Context, discount *models.Discount) error {
	query := `
		UPDATE discounts
		SET name = $1, percent = $2, starts_at = $3, ends_at = $4, updated_at = NOW()
		WHERE vendor_id = $5 AND id = $6
	`
	_, err := r.db.Exec(ctx, query, discount.Name, discount.Percent, discount.StartsAt, discount.EndsAt, discount.VendorID, discount.ID)
	return err
}

// Delete removes a discount and its menu links in one transaction.
func (r *discountRepo) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM menu_discounts WHERE discount_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM discounts WHERE vendor_id = $1 AND id = $2`, vendorID, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *discountRepo) LinkMenu(ctx context.Context, link *models.MenuDiscount) error {
	query := `
		INSERT INTO menu_discounts (id, menu_id, discount_id, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := r.db.Exec(ctx, query, link.ID, link.MenuID, link.DiscountID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateLink
	}
	return err
}

func (r *discountRepo) UnlinkMenu(ctx context.Context, menuID, discountID uuid.UUID) error {
	query := `DELETE FROM menu_discounts WHERE menu_id = $1 AND discount_id = $2`
	_, err := r.db.Exec(ctx, query, menuID, discountID)
	return err
}

func (r *discountRepo) ListByMenu(ctx context.Context, menuID uuid.UUID) ([]*models.Discount, error) {
	query := `
		SELECT d.id, d.vendor_id, d.name, d.percent, d.starts_at, d.ends_at, d.created_at, d.updated_at
		FROM discounts d
		JOIN menu_discounts md ON md.discount_id = d.id
		WHERE md.menu_id = $1
		ORDER BY d.percent DESC, d.starts_at ASC
	`
	rows, err := r.db.Query(ctx, query, menuID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDiscounts(rows)
}

// ActiveForMenu returns the discount applied to a menu item at the given
// instant, or nil when none is active. When several linked discounts
// overlap, the largest percentage wins; ties go to the earliest start.
func (r *discountRepo) ActiveForMenu(ctx context.Context, menuID uuid.UUID, at time.Time) (*models.Discount, error) {
	discount := &models.Discount{}
	query := `
		SELECT d.id, d.vendor_id, d.name, d.percent, d.starts_at, d.ends_at, d.created_at, d.updated_at
		FROM discounts d
		JOIN menu_discounts md ON md.discount_id = d.id
		WHERE md.menu_id = $1 AND d.starts_at <= $2 AND d.ends_at > $2
		ORDER BY d.percent DESC, d.starts_at ASC
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query, menuID, at).Scan(&discount.ID, &discount.VendorID, &discount.Name, &discount.Percent, &discount.StartsAt, &discount.EndsAt, &discount.CreatedAt, &discount.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return discount, nil
}

func collectDiscounts(rows pgx.Rows) ([]*models.Discount, error) {
	var discounts []*models.Discount
	for rows.Next() {
		discount := &models.Discount{}
		if err := rows.Scan(&discount.ID, &discount.VendorID, &discount.Name, &discount.Percent, &discount.StartsAt, &discount.EndsAt, &discount.CreatedAt, &discount.UpdatedAt); err != nil {
			return nil, err
		}
		discounts = append(discounts, discount)
	}
	return discounts, rows.Err()
}
