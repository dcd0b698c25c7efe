package main

import (
	"context"

	"github.com/chagall04/Team-BOOZE-Inventory-System/internal/console"
	"github.com/chagall04/Team-BOOZE-Inventory-System/pkg/config"
	"github.com/chagall04/Team-BOOZE-Inventory-System/pkg/database"
	"github.com/chagall04/Team-BOOZE-Inventory-System/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration; config.Load reads the optional .env file itself
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory system",
		zap.String("environment", appConfig.App.Env),
		zap.String("db_driver", appConfig.DB.Driver))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// First-run seeding of the sample catalog and default manager account
	if appConfig.App.SeedCatalog {
		if err := database.Seed(database.GetDB()); err != nil {
			log.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	// Run the interactive console until the operator exits
	app := console.New(database.GetDB(), appConfig, log)
	app.Run(context.Background())
}
