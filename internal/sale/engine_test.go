package sale

import (
	"context"
	"errors"
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

func newTestDB(t *testing.T) *gorm.DB {
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
	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Transaction{},
		&model.TransactionItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, stock int) model.Product {
	t.Helper()
	product := model.Product{
		Name:           name,
		Brand:          "Test Brand",
		Type:           "Whiskey",
		Price:          decimal.RequireFromString(price),
		QuantityOnHand: stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func stockOf(t *testing.T, db *gorm.DB, productID uint) int {
	t.Helper()
	var product model.Product
	require.NoError(t, db.First(&product, productID).Error)
	return product.QuantityOnHand
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(value).Count(&count).Error)
	return count
}

func TestCommitSale_Success(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	product := seedProduct(t, db, "Jameson Original", "5.00", 50)
	engine := NewEngine(db, zap.NewNop())
	lines := []CartLine{{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  10,
		UnitPrice: decimal.RequireFromString("5.00"),
	}}
	total := decimal.RequireFromString("50.00")

	// Act
	receipt, err := engine.CommitSale(context.Background(), lines, total)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.NotZero(t, receipt.TransactionID)
	assert.NotEmpty(t, receipt.Reference)
	assert.Equal(t, 40, stockOf(t, db, product.ID))
	assert.EqualValues(t, 1, countRows(t, db, &model.Transaction{}))
	assert.EqualValues(t, 1, countRows(t, db, &model.TransactionItem{}))

	var stored model.Transaction
	require.NoError(t, db.First(&stored, receipt.TransactionID).Error)
	assert.True(t, stored.TotalAmount.Equal(total),
		"stored total %s != %s", stored.TotalAmount, total)
}

func TestCommitSale_StoredTotalMatchesLineSum(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	whiskey := seedProduct(t, db, "Powers Gold Label", "32.00", 20)
	stout := seedProduct(t, db, "Guinness Draught", "2.80", 100)
	engine := NewEngine(db, zap.NewNop())
	lines := []CartLine{
		{ProductID: whiskey.ID, Name: whiskey.Name, Quantity: 2, UnitPrice: whiskey.Price},
		{ProductID: stout.ID, Name: stout.Name, Quantity: 6, UnitPrice: stout.Price},
	}
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal())
	}

	// Act
	receipt, err := engine.CommitSale(context.Background(), lines, total)

	// Assert
	require.NoError(t, err)
	var stored model.Transaction
	require.NoError(t, db.First(&stored, receipt.TransactionID).Error)
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("80.80")))

	var items []model.TransactionItem
	require.NoError(t, db.Where("transaction_id = ?", receipt.TransactionID).
		Order("item_id ASC").Find(&items).Error)
	require.Len(t, items, 2)
	assert.Equal(t, whiskey.ID, items[0].ProductID)
	assert.Equal(t, stout.ID, items[1].ProductID)
	assert.Equal(t, 18, stockOf(t, db, whiskey.ID))
	assert.Equal(t, 94, stockOf(t, db, stout.ID))
}

func TestCommitSale_InsufficientStock(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	product := seedProduct(t, db, "Dingle Gin", "5.00", 5)
	engine := NewEngine(db, zap.NewNop())
	lines := []CartLine{{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  10,
		UnitPrice: decimal.RequireFromString("5.00"),
	}}

	// Act
	receipt, err := engine.CommitSale(context.Background(), lines, decimal.RequireFromString("50.00"))

	// Assert
	require.Error(t, err)
	assert.Nil(t, receipt)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, product.ID, stockErr.ProductID)
	assert.Equal(t, 5, stockErr.Available)
	assert.Equal(t, 10, stockErr.Requested)

	assert.Equal(t, 5, stockOf(t, db, product.ID))
	assert.EqualValues(t, 0, countRows(t, db, &model.Transaction{}))
	assert.EqualValues(t, 0, countRows(t, db, &model.TransactionItem{}))
}

func TestCommitSale_ProductNotFound(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	engine := NewEngine(db, zap.NewNop())
	lines := []CartLine{{
		ProductID: 999,
		Name:      "Ghost Bottle",
		Quantity:  1,
		UnitPrice: decimal.RequireFromString("9.99"),
	}}

	// Act
	receipt, err := engine.CommitSale(context.Background(), lines, decimal.RequireFromString("9.99"))

	// Assert
	require.Error(t, err)
	assert.Nil(t, receipt)

	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.EqualValues(t, 999, notFound.ProductID)

	assert.EqualValues(t, 0, countRows(t, db, &model.Transaction{}))
	assert.EqualValues(t, 0, countRows(t, db, &model.TransactionItem{}))
}

func TestCommitSale_EmptyCart(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	engine := NewEngine(db, zap.NewNop())

	// Act
	receipt, err := engine.CommitSale(context.Background(), nil, decimal.Zero)

	// Assert
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, receipt)
	assert.EqualValues(t, 0, countRows(t, db, &model.Transaction{}))
}

func TestCommitSale_MultiLineRollback(t *testing.T) {
	// Arrange: line 1 passes the stock check, line 2 cannot.
	db := newTestDB(t)
	plenty := seedProduct(t, db, "Heineken", "3.00", 50)
	scarce := seedProduct(t, db, "Bombay Sapphire", "34.00", 1)
	engine := NewEngine(db, zap.NewNop())
	lines := []CartLine{
		{ProductID: plenty.ID, Name: plenty.Name, Quantity: 5, UnitPrice: plenty.Price},
		{ProductID: scarce.ID, Name: scarce.Name, Quantity: 10, UnitPrice: scarce.Price},
	}

	// Act
	receipt, err := engine.CommitSale(context.Background(), lines, decimal.RequireFromString("355.00"))

	// Assert: nothing survives, including line 1's decrement.
	require.Error(t, err)
	assert.Nil(t, receipt)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, scarce.ID, stockErr.ProductID)

	assert.Equal(t, 50, stockOf(t, db, plenty.ID))
	assert.Equal(t, 1, stockOf(t, db, scarce.ID))
	assert.EqualValues(t, 0, countRows(t, db, &model.Transaction{}))
	assert.EqualValues(t, 0, countRows(t, db, &model.TransactionItem{}))
}

func TestCommitSale_SequentialDepletion(t *testing.T) {
	// Arrange: stock 10, two commits of 6 each. The second must fail on the
	// commit-time re-read even though both carts saw 10 at assembly time.
	db := newTestDB(t)
	product := seedProduct(t, db, "Bushmills Original", "29.00", 10)
	engine := NewEngine(db, zap.NewNop())
	lines := []CartLine{{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  6,
		UnitPrice: product.Price,
	}}
	total := decimal.RequireFromString("174.00")

	// Act
	first, firstErr := engine.CommitSale(context.Background(), lines, total)
	second, secondErr := engine.CommitSale(context.Background(), lines, total)

	// Assert
	require.NoError(t, firstErr)
	require.NotNil(t, first)
	assert.Nil(t, second)

	var stockErr *InsufficientStockError
	require.ErrorAs(t, secondErr, &stockErr)
	assert.Equal(t, 4, stockErr.Available)
	assert.Equal(t, 6, stockErr.Requested)

	assert.Equal(t, 4, stockOf(t, db, product.ID))
	assert.EqualValues(t, 1, countRows(t, db, &model.Transaction{}))
	assert.EqualValues(t, 1, countRows(t, db, &model.TransactionItem{}))
}

func TestCommitSale_StoreFailureRollsBack(t *testing.T) {
	// Arrange: break the store mid-unit by dropping the items table, so the
	// header insert succeeds and the item insert raises a driver error.
	db := newTestDB(t)
	product := seedProduct(t, db, "Captain Morgan Spiced Gold", "26.00", 60)
	require.NoError(t, db.Migrator().DropTable(&model.TransactionItem{}))
	engine := NewEngine(db, zap.NewNop())
	lines := []CartLine{{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  2,
		UnitPrice: product.Price,
	}}

	// Act
	receipt, err := engine.CommitSale(context.Background(), lines, decimal.RequireFromString("52.00"))

	// Assert: the driver error surfaces wrapped and nothing persists.
	require.Error(t, err)
	assert.Nil(t, receipt)

	var storeErr *StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, "insert transaction item", storeErr.Op)
	assert.Error(t, storeErr.Unwrap())

	assert.Equal(t, 60, stockOf(t, db, product.ID))
	assert.EqualValues(t, 0, countRows(t, db, &model.Transaction{}))
}

func TestCommitSale_PriceAtSaleSurvivesCatalogEdits(t *testing.T) {
	// Arrange
	db := newTestDB(t)
	product := seedProduct(t, db, "Baileys Irish Cream", "25.00", 40)
	engine := NewEngine(db, zap.NewNop())
	lines := []CartLine{{
		ProductID: product.ID,
		Name:      product.Name,
		Quantity:  2,
		UnitPrice: product.Price,
	}}

	// Act
	receipt, err := engine.CommitSale(context.Background(), lines, decimal.RequireFromString("50.00"))
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("99.00")).Error)

	// Assert: the item row keeps the price charged at sale time.
	var item model.TransactionItem
	require.NoError(t, db.Where("transaction_id = ?", receipt.TransactionID).First(&item).Error)
	assert.True(t, item.PriceAtSale.Equal(decimal.RequireFromString("25.00")))
}
