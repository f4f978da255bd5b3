package repositories

import (
	"context"
	"testing"
	"time"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DiscountRepoTestSuite struct {
	suite.Suite
	mock     pgxmock.PgxPoolIface
	repo     DiscountRepository
	vendorID uuid.UUID
	menuID   uuid.UUID
	context  context.Context
}

func (suite *DiscountRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewDiscountRepo(mock)
	suite.vendorID = uuid.New()
	suite.menuID = uuid.New()
	suite.context = context.Background()
}

func (suite *DiscountRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestDiscountRepoTestSuite(t *testing.T) {
	suite.Run(t, new(DiscountRepoTestSuite))
}

func (suite *DiscountRepoTestSuite) TestActiveForMenu_ReturnsWinningDiscount() {
	at := time.Now()
	discountID := uuid.New()
	starts := at.Add(-time.Hour)
	ends := at.Add(time.Hour)

	suite.mock.ExpectQuery(`ORDER BY d.percent DESC, d.starts_at ASC`).
		WithArgs(suite.menuID, at).
		WillReturnRows(pgxmock.NewRows([]string{"id", "vendor_id", "name", "percent", "starts_at", "ends_at", "created_at", "updated_at"}).
			AddRow(discountID, suite.vendorID, "Promo Ramadan", 20, starts, ends, at, at))

	discount, err := suite.repo.ActiveForMenu(suite.context, suite.menuID, at)
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), discount)
	assert.Equal(suite.T(), 20, discount.Percent)
	assert.Equal(suite.T(), discountID, discount.ID)
}

func (suite *DiscountRepoTestSuite) TestActiveForMenu_NoneActive() {
	at := time.Now()
	suite.mock.ExpectQuery(`ORDER BY d.percent DESC, d.starts_at ASC`).
		WithArgs(suite.menuID, at).
		WillReturnRows(pgxmock.NewRows([]string{"id", "vendor_id", "name", "percent", "starts_at", "ends_at", "created_at", "updated_at"}))

	discount, err := suite.repo.ActiveForMenu(suite.context, suite.menuID, at)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), discount)
}

func (suite *DiscountRepoTestSuite) TestLinkMenu_DuplicatePairMapsToSentinel() {
	link := &models.MenuDiscount{
		ID:         uuid.New(),
		MenuID:     suite.menuID,
		DiscountID: uuid.New(),
	}

	suite.mock.ExpectExec(`INSERT INTO menu_discounts`).
		WithArgs(link.ID, link.MenuID, link.DiscountID).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := suite.repo.LinkMenu(suite.context, link)
	assert.ErrorIs(suite.T(), err, ErrDuplicateLink)
}

func (suite *DiscountRepoTestSuite) TestLinkMenu_Success() {
	link := &models.MenuDiscount{
		ID:         uuid.New(),
		MenuID:     suite.menuID,
		DiscountID: uuid.New(),
	}

	suite.mock.ExpectExec(`INSERT INTO menu_discounts`).
		WithArgs(link.ID, link.MenuID, link.DiscountID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.LinkMenu(suite.context, link)
	assert.NoError(suite.T(), err)
}

func (suite *DiscountRepoTestSuite) TestDelete_RemovesLinksInSameTransaction() {
	discountID := uuid.New()

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM menu_discounts WHERE discount_id`).
		WithArgs(discountID).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	suite.mock.ExpectExec(`DELETE FROM discounts WHERE vendor_id`).
		WithArgs(suite.vendorID, discountID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	suite.mock.ExpectCommit()
	suite.mock.ExpectRollback()

	err := suite.repo.Delete(suite.context, suite.vendorID, discountID)
	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DiscountRepoTestSuite) TestGetByVendorAndID_ScopedToVendor() {
	discountID := uuid.New()
	suite.mock.ExpectQuery(`FROM discounts WHERE vendor_id`).
		WithArgs(suite.vendorID, discountID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "vendor_id", "name", "percent", "starts_at", "ends_at", "created_at", "updated_at"}))

	discount, err := suite.repo.GetByVendorAndID(suite.context, suite.vendorID, discountID)
	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), discount)
}
