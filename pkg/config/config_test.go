package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "inventory.db", cfg.DB.Path)
	assert.Equal(t, "inventory.db", cfg.DB.GetDSN())
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.App.SeedCatalog)
	assert.Equal(t, 20, cfg.App.LowStockThreshold)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, logger.Error, cfg.DB.LogLevel)
}

func TestLoad_PostgresDSN(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_NAME", "shop")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Contains(t, cfg.DB.GetDSN(), "host=db.example.com")
	assert.Contains(t, cfg.DB.GetDSN(), "dbname=shop")
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	cfg, err := Load()

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_OverridesFromEnvironment(t *testing.T) {
	t.Setenv("APP_SEED_CATALOG", "false")
	t.Setenv("APP_LOW_STOCK_THRESHOLD", "5")
	t.Setenv("DB_LOG_LEVEL", "silent")

	cfg, err := Load()

	require.NoError(t, err)
	assert.False(t, cfg.App.SeedCatalog)
	assert.Equal(t, 5, cfg.App.LowStockThreshold)
	assert.Equal(t, logger.Silent, cfg.DB.LogLevel)
}
