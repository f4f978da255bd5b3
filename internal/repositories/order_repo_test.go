package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"kantinku/internal/models"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type OrderRepoTestSuite struct {
	suite.Suite
	mock      pgxmock.PgxPoolIface
	repo      OrderRepository
	studentID uuid.UUID
	vendorID  uuid.UUID
	context   context.Context
}

func (suite *OrderRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewOrderRepo(mock)
	suite.studentID = uuid.New()
	suite.vendorID = uuid.New()
	suite.context = context.Background()
}

func (suite *OrderRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepoTestSuite))
}

func (suite *OrderRepoTestSuite) newOrder() (*models.Order, []*models.OrderItem) {
	now := time.Now()
	order := &models.Order{
		ID:        uuid.New(),
		StudentID: suite.studentID,
		VendorID:  suite.vendorID,
		Status:    models.StatusUnconfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	items := []*models.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, MenuID: uuid.New(), MenuName: "Nasi Goreng", Quantity: 2, FrozenPrice: 13500, CreatedAt: now},
		{ID: uuid.New(), OrderID: order.ID, MenuID: uuid.New(), MenuName: "Es Teh", Quantity: 1, FrozenPrice: 4250, CreatedAt: now},
	}
	return order, items
}

func (suite *OrderRepoTestSuite) TestCreateWithItems_CommitsAllRows() {
	order, items := suite.newOrder()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(order.ID, order.StudentID, order.VendorID, order.Status, order.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	for _, item := range items {
		suite.mock.ExpectExec(`INSERT INTO order_items`).
			WithArgs(item.ID, item.OrderID, item.MenuID, item.MenuName, item.Quantity, item.FrozenPrice, item.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}
	suite.mock.ExpectCommit()
	suite.mock.ExpectRollback()

	err := suite.repo.CreateWithItems(suite.context, order, items)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestCreateWithItems_ItemFailureRollsBack() {
	order, items := suite.newOrder()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`INSERT INTO orders`).
		WithArgs(order.ID, order.StudentID, order.VendorID, order.Status, order.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(`INSERT INTO order_items`).
		WithArgs(items[0].ID, items[0].OrderID, items[0].MenuID, items[0].MenuName, items[0].Quantity, items[0].FrozenPrice, items[0].CreatedAt).
		WillReturnError(errors.New("constraint violation"))
	suite.mock.ExpectRollback()

	err := suite.repo.CreateWithItems(suite.context, order, items)
	assert.Error(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestGetByID_NotFoundReturnsNil() {
	orderID := uuid.New()
	suite.mock.ExpectQuery(`SELECT id, student_id, vendor_id, status, created_at, updated_at`).
		WithArgs(orderID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "student_id", "vendor_id", "status", "created_at", "updated_at"}))

	order, err := suite.repo.GetByID(suite.context, orderID)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), order)
}

func (suite *OrderRepoTestSuite) TestGetByID_LoadsItems() {
	orderID := uuid.New()
	now := time.Now()

	suite.mock.ExpectQuery(`SELECT id, student_id, vendor_id, status, created_at, updated_at`).
		WithArgs(orderID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "student_id", "vendor_id", "status", "created_at", "updated_at"}).
			AddRow(orderID, suite.studentID, suite.vendorID, models.StatusCooking, now, now))
	suite.mock.ExpectQuery(`SELECT id, order_id, menu_id, menu_name, quantity, frozen_price, created_at`).
		WithArgs(orderID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "menu_id", "menu_name", "quantity", "frozen_price", "created_at"}).
			AddRow(uuid.New(), orderID, uuid.New(), "Bakso", 2, int64(10000), now))

	order, err := suite.repo.GetByID(suite.context, orderID)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), order)
	assert.Equal(suite.T(), models.StatusCooking, order.Status)
	assert.Len(suite.T(), order.Items, 1)
	assert.Equal(suite.T(), int64(20000), order.Total())
}

func (suite *OrderRepoTestSuite) TestUpdateStatus() {
	orderID := uuid.New()
	suite.mock.ExpectExec(`UPDATE orders SET status`).
		WithArgs(models.StatusCooking, orderID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := suite.repo.UpdateStatus(suite.context, orderID, models.StatusCooking)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *OrderRepoTestSuite) TestItemsForVendorRange() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	now := time.Now()

	suite.mock.ExpectQuery(`JOIN orders o ON o.id = i.order_id`).
		WithArgs(suite.vendorID, start, end).
		WillReturnRows(pgxmock.NewRows([]string{"id", "order_id", "menu_id", "menu_name", "quantity", "frozen_price", "created_at"}).
			AddRow(uuid.New(), uuid.New(), uuid.New(), "Soto", 3, int64(9000), now))

	items, err := suite.repo.ItemsForVendorRange(suite.context, suite.vendorID, start, end)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 1)
	assert.Equal(suite.T(), int64(27000), items[0].Subtotal())
}
