package inventory

import (
	"context"
	"testing"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// The in-memory database lives per connection.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Product{}))
	return NewStore(db, zap.NewNop()), db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, stock int) model.Product {
	t.Helper()
	product := model.Product{
		Name:           name,
		Brand:          "Test Brand",
		Type:           "Stout",
		Price:          decimal.RequireFromString("2.80"),
		QuantityOnHand: stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestGetStock(t *testing.T) {
	store, db := newTestStore(t)
	product := seedProduct(t, db, "Guinness Draught", 200)

	level, err := store.GetStock(context.Background(), product.ID)

	require.NoError(t, err)
	assert.Equal(t, product.ID, level.ProductID)
	assert.Equal(t, "Guinness Draught", level.Name)
	assert.Equal(t, 200, level.Quantity)
}

func TestGetStock_NotFound(t *testing.T) {
	store, _ := newTestStore(t)

	level, err := store.GetStock(context.Background(), 999)

	require.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, level)
}

func TestSetStock(t *testing.T) {
	store, db := newTestStore(t)
	product := seedProduct(t, db, "Heineken", 180)

	require.NoError(t, store.SetStock(context.Background(), product.ID, 25))

	level, err := store.GetStock(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, level.Quantity)
}

func TestSetStock_RejectsNegative(t *testing.T) {
	store, db := newTestStore(t)
	product := seedProduct(t, db, "Heineken", 180)

	err := store.SetStock(context.Background(), product.ID, -1)

	require.ErrorIs(t, err, ErrNegativeQuantity)
}

func TestReceiveStock(t *testing.T) {
	store, db := newTestStore(t)
	product := seedProduct(t, db, "Bulmers Original Irish Cider", 150)

	movement, err := store.ReceiveStock(context.Background(), product.ID, 24)

	require.NoError(t, err)
	assert.Equal(t, 150, movement.Previous)
	assert.Equal(t, 24, movement.Applied)
	assert.Equal(t, 174, movement.New)

	level, err := store.GetStock(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 174, level.Quantity)
}

func TestReceiveStock_UnknownProduct(t *testing.T) {
	store, _ := newTestStore(t)

	movement, err := store.ReceiveStock(context.Background(), 999, 10)

	require.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, movement)
}

func TestLogLoss(t *testing.T) {
	store, db := newTestStore(t)
	product := seedProduct(t, db, "Dingle Gin", 30)

	movement, err := store.LogLoss(context.Background(), product.ID, 3)

	require.NoError(t, err)
	assert.Equal(t, 30, movement.Previous)
	assert.Equal(t, -3, movement.Applied)
	assert.Equal(t, 27, movement.New)
}

func TestLogLoss_ExceedsStock(t *testing.T) {
	store, db := newTestStore(t)
	product := seedProduct(t, db, "Dingle Gin", 2)

	movement, err := store.LogLoss(context.Background(), product.ID, 5)

	require.ErrorIs(t, err, ErrLossExceedsStock)
	assert.Nil(t, movement)

	// The rejected loss leaves stock untouched.
	level, getErr := store.GetStock(context.Background(), product.ID)
	require.NoError(t, getErr)
	assert.Equal(t, 2, level.Quantity)
}

func TestAdjustments_RejectNonPositiveQuantities(t *testing.T) {
	store, db := newTestStore(t)
	product := seedProduct(t, db, "Bacardi Superior", 55)

	_, err := store.ReceiveStock(context.Background(), product.ID, 0)
	require.ErrorIs(t, err, ErrNegativeQuantity)

	_, err = store.LogLoss(context.Background(), product.ID, -2)
	require.ErrorIs(t, err, ErrNegativeQuantity)
}
