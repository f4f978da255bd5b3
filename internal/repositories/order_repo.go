package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository interface {
	// CreateWithItems persists an order and all of its items as one
	// transaction: either every row exists afterwards or none do.
	CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error)
	ListByStudentAndRange(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]*models.Order, error)
	ListByVendorAndRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error

	// ItemsForVendorRange returns every order item of the vendor whose
	// parent order was created within [start, end], for reporting.
	ItemsForVendorRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]*models.OrderItem, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (id, student_id, vendor_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
	`
	if _, err := tx.Exec(ctx, orderQuery, order.ID, order.StudentID, order.VendorID, order.Status, order.CreatedAt); err != nil {
		return err
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, menu_id, menu_name, quantity, frozen_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, item := range items {
		if _, err := tx.Exec(ctx, itemQuery, item.ID, item.OrderID, item.MenuID, item.MenuName, item.Quantity, item.FrozenPrice, item.CreatedAt); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, student_id, vendor_id, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.StudentID, &order.VendorID, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepo) ListByStudent(ctx context.Context, studentID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error) {
	return r.list(ctx, "student_id", studentID, status)
}

func (r *orderRepo) ListByVendor(ctx context.Context, vendorID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error) {
	return r.list(ctx, "vendor_id", vendorID, status)
}

func (r *orderRepo) list(ctx context.Context, ownerColumn string, ownerID uuid.UUID, status *models.OrderStatus) ([]*models.Order, error) {
	query := fmt.Sprintf(`
		SELECT id, student_id, vendor_id, status, created_at, updated_at
		FROM orders
		WHERE %s = $1
	`, ownerColumn)
	args := []any{ownerID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectWithItems(ctx, rows)
}

func (r *orderRepo) ListByStudentAndRange(ctx context.Context, studentID uuid.UUID, start, end time.Time) ([]*models.Order, error) {
	return r.listRange(ctx, "student_id", studentID, start, end)
}

func (r *orderRepo) ListByVendorAndRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]*models.Order, error) {
	return r.listRange(ctx, "vendor_id", vendorID, start, end)
}

func (r *orderRepo) listRange(ctx context.Context, ownerColumn string, ownerID uuid.UUID, start, end time.Time) ([]*models.Order, error) {
	query := fmt.Sprintf(`
		SELECT id, student_id, vendor_id, status, created_at, updated_at
		FROM orders
		WHERE %s = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at DESC
	`, ownerColumn)
	rows, err := r.db.Query(ctx, query, ownerID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectWithItems(ctx, rows)
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) error {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status, id)
	return err
}

func (r *orderRepo) ItemsForVendorRange(ctx context.Context, vendorID uuid.UUID, start, end time.Time) ([]*models.OrderItem, error) {
	query := `
		SELECT i.id, i.order_id, i.menu_id, i.menu_name, i.quantity, i.frozen_price, i.created_at
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		WHERE o.vendor_id = $1 AND o.created_at BETWEEN $2 AND $3
		ORDER BY i.created_at ASC
	`
	rows, err := r.db.Query(ctx, query, vendorID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrderItems(rows)
}

func (r *orderRepo) itemsForOrder(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error) {
	query := `
		SELECT id, order_id, menu_id, menu_name, quantity, frozen_price, created_at
		FROM order_items
		WHERE order_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrderItems(rows)
}

func (r *orderRepo) collectWithItems(ctx context.Context, rows pgx.Rows) ([]*models.Order, error) {
	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.StudentID, &order.VendorID, &order.Status, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for _, order := range orders {
		items, err := r.itemsForOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}
	return orders, nil
}

func collectOrderItems(rows pgx.Rows) ([]*models.OrderItem, error) {
	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuID, &item.MenuName, &item.Quantity, &item.FrozenPrice, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
