package testhelpers

import (
	"context"
	"os"
	"testing"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// TestDB holds the database connection for integration tests.
type TestDB struct {
	Pool    *pgxpool.Pool
	Cleanup func() error
}

// SetupTestDB creates a pooled connection for testing.
func SetupTestDB(t *testing.T, connString string) *TestDB {
	t.Helper()

	if connString == "" {
		connString = os.Getenv("TEST_DATABASE_URL")
		if connString == "" {
			connString = "host=localhost port=5432 user=postgres password=postgres dbname=kantinku_test sslmode=disable"
		}
	}

	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	return &TestDB{
		Pool: pool,
		Cleanup: func() error {
			pool.Close()
			return nil
		},
	}
}

// SetupTestUser inserts a user with a bcrypt-hashed password.
func SetupTestUser(t *testing.T, db *TestDB, username, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("test-password-123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}
	query := `
		INSERT INTO users (id, username, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	if _, err := db.Pool.Exec(context.Background(), query, userID, username, string(hash), role); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return userID
}

// SetupTestVendor creates a vendor account plus its stall profile.
func SetupTestVendor(t *testing.T, db *TestDB) *models.Vendor {
	t.Helper()

	userID := SetupTestUser(t, db, "stan-"+uuid.NewString()[:8], models.RoleVendor)
	vendor := &models.Vendor{
		ID:        uuid.New(),
		UserID:    userID,
		StallName: "Test Stall",
		OwnerName: "Test Owner",
	}
	query := `
		INSERT INTO vendors (id, user_id, stall_name, owner_name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	if _, err := db.Pool.Exec(context.Background(), query, vendor.ID, vendor.UserID, vendor.StallName, vendor.OwnerName, vendor.Phone); err != nil {
		t.Fatalf("Failed to create test vendor: %v", err)
	}
	return vendor
}

// SetupTestStudent creates a student account plus its profile.
func SetupTestStudent(t *testing.T, db *TestDB) *models.Student {
	t.Helper()

	userID := SetupTestUser(t, db, "siswa-"+uuid.NewString()[:8], models.RoleStudent)
	student := &models.Student{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Test Student",
	}
	query := `
		INSERT INTO students (id, user_id, name, address, phone, photo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`
	if _, err := db.Pool.Exec(context.Background(), query, student.ID, student.UserID, student.Name, student.Address, student.Phone, student.Photo); err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	return student
}

// SetupTestMenu creates a menu item owned by the given vendor.
func SetupTestMenu(t *testing.T, db *TestDB, vendorID uuid.UUID, name string, unitPrice int64) *models.MenuItem {
	t.Helper()

	item := &models.MenuItem{
		ID:        uuid.New(),
		VendorID:  vendorID,
		Name:      name,
		UnitPrice: unitPrice,
		Category:  models.CategoryFood,
	}
	query := `
		INSERT INTO menu_items (id, vendor_id, name, unit_price, category, description, photo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
	`
	if _, err := db.Pool.Exec(context.Background(), query, item.ID, item.VendorID, item.Name, item.UnitPrice, item.Category, item.Description, item.Photo); err != nil {
		t.Fatalf("Failed to create test menu item: %v", err)
	}
	return item
}
