package services

import (
	"fmt"
	"testing"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database and migrates the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.Household{},
		&models.Address{},
		&models.Event{},
		&models.Gift{},
		&models.Card{},
		&models.Picklists{},
	)
	require.NoError(t, err, "failed to migrate test schema")

	return db
}

// testConfig returns a config suitable for tests
func testConfig() *config.Config {
	return &config.Config{
		EnvType:        "LOCAL",
		CascadeDeletes: false,
		ServerPort:     "5000",
		RateLimitRate:  1000,
		RateLimitBurst: 1000,
	}
}
