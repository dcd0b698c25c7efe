package database

import (
	"fmt"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/model"
	"github.com/chagall04/Team-BOOZE-Inventory-System/pkg/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB initializes the database connection with configuration and runs migrations
func InitDB(cfg *config.Config) error {
	var (
		dialector gorm.Dialector
		err       error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		// Configure Postgres options
		pgConfig := postgres.Config{
			DSN:                  cfg.DB.GetDSN(),
			PreferSimpleProtocol: true, // Disables implicit prepared statement usage
		}
		dialector = postgres.New(pgConfig)
	default:
		// Local file-backed store; the default for a single-shop install.
		dialector = sqlite.Open(cfg.DB.GetDSN())
	}

	// Open connection
	db, err = gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(cfg.DB.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(
		&model.Product{},
		&model.Transaction{},
		&model.TransactionItem{},
		&model.User{},
	); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}
