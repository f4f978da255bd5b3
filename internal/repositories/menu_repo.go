package repositories

import (
	"context"
	"errors"
	"fmt"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MenuRepository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	GetByVendorAndID(ctx context.Context, vendorID, id uuid.UUID) (*models.MenuItem, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.MenuItem, error)
	Search(ctx context.Context, filter *models.MenuSearchFilter) ([]*models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, vendorID, id uuid.UUID) error
}

type menuRepo struct {
	db Database
}

func NewMenuRepo(db Database) MenuRepository {
	return &menuRepo{db: db}
}

const menuColumns = `id, vendor_id, name, unit_price, category, description, photo, created_at, updated_at`

func scanMenuItem(row pgx.Row) (*models.MenuItem, error) {
	item := &models.MenuItem{}
	err := row.Scan(&item.ID, &item.VendorID, &item.Name, &item.UnitPrice, &item.Category, &item.Description, &item.Photo, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *menuRepo) Create(ctx context.Context, item *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, vendor_id, name, unit_price, category, description, photo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.VendorID, item.Name, item.UnitPrice, item.Category, item.Description, item.Photo)
	return err
}

func (r *menuRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`
	item, err := scanMenuItem(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

// GetByVendorAndID resolves a menu item scoped to its owning vendor. An item
// that exists under a different vendor is not found.
func (r *menuRepo) GetByVendorAndID(ctx context.Context, vendorID, id uuid.UUID) (*models.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE vendor_id = $1 AND id = $2`
	item, err := scanMenuItem(r.db.QueryRow(ctx, query, vendorID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

func (r *menuRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*models.MenuItem, error) {
	query := `
		SELECT ` + menuColumns + `
		FROM menu_items
		WHERE vendor_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

// Search lists menu items across all vendors for the public browsing
// endpoints, optionally filtered by name substring, category, and whether
// the item has at least one discount link.
func (r *menuRepo) Search(ctx context.Context, filter *models.MenuSearchFilter) ([]*models.MenuItem, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}

	queryBase := `
		SELECT m.id, m.vendor_id, m.name, m.unit_price, m.category, m.description, m.photo, m.created_at, m.updated_at
		FROM menu_items m
		WHERE 1 = 1
	`
	args := []any{}
	argn := 0

	if filter.Query != "" {
		argn++
		queryBase += fmt.Sprintf(` AND m.name ILIKE $%d`, argn)
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.Category != nil {
		argn++
		queryBase += fmt.Sprintf(` AND m.category = $%d`, argn)
		args = append(args, *filter.Category)
	}
	if filter.DiscountedOnly {
		queryBase += ` AND EXISTS (SELECT 1 FROM menu_discounts md WHERE md.menu_id = m.id)`
	}

	queryBase += ` ORDER BY m.created_at DESC`
	argn++
	queryBase += fmt.Sprintf(` LIMIT $%d`, argn)
	args = append(args, filter.Limit)
	if filter.Offset > 0 {
		argn++
		queryBase += fmt.Sprintf(` OFFSET $%d`, argn)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMenuItems(rows)
}

func (r *menuRepo) Update(ctx context.Context, item *models.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $1, unit_price = $2, category = $3, description = $4, photo = $5, updated_at = NOW()
		WHERE vendor_id = $6 AND id = $7
	`
	_, err := r.db.Exec(ctx, query, item.Name, item.UnitPrice, item.Category, item.Description, item.Photo, item.VendorID, item.ID)
	return err
}

// Delete removes a menu item and its discount links in one transaction, so
// a reader can never observe a dangling link row.
func (r *menuRepo) Delete(ctx context.Context, vendorID, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM menu_discounts WHERE menu_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE vendor_id = $1 AND id = $2`, vendorID, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func collectMenuItems(rows pgx.Rows) ([]*models.MenuItem, error) {
	var items []*models.MenuItem
	for rows.Next() {
		item := &models.MenuItem{}
		if err := rows.Scan(&item.ID, &item.VendorID, &item.Name, &item.UnitPrice, &item.Category, &item.Description, &item.Photo, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
