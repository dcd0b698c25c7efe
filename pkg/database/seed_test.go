package database

import (
	"testing"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
		&model.User{},
	))
	return db
}

func TestSeed(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db))

	var productCount, userCount int64
	require.NoError(t, db.Model(&model.Product{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&model.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 15, productCount)
	assert.EqualValues(t, 1, userCount)

	var manager model.User
	require.NoError(t, db.Where("username = ?", defaultManagerUsername).First(&manager).Error)
	assert.Equal(t, model.RoleManager, manager.Role)
}

func TestSeed_LeavesExistingDataAlone(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))

	// Running the seed again must not duplicate anything.
	require.NoError(t, Seed(db))

	var productCount, userCount int64
	require.NoError(t, db.Model(&model.Product{}).Count(&productCount).Error)
	require.NoError(t, db.Model(&model.User{}).Count(&userCount).Error)
	assert.EqualValues(t, 15, productCount)
	assert.EqualValues(t, 1, userCount)
}
