// @title           Greeting Cards API
// @version         1.0
// @description     Personal record-keeping API for households, addresses, events, gifts, and greeting/thank-you cards

// @host      localhost:5000
// @BasePath  /api
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/brystmar/greeting-cards/internal/app/routes"
	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"
	"github.com/brystmar/greeting-cards/internal/infrastructure/database"
	Logger "github.com/brystmar/greeting-cards/internal/pkg/logger"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// Use all available cores
	runtime.GOMAXPROCS(runtime.NumCPU())

	// Initialize logging before anything else can fail
	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load the .env file
	if err := godotenv.Load(); err != nil {
		Logger.Warning("Unable to load .env file: %v", err)
		// Keep going; the environment may be set another way
	} else {
		Logger.Info("Loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("Unable to create database connection pool: %v", err)
	}
	db := pool.GetDB()

	if cfg.DBMigrationMode == "drop" {
		// Destructive: drops every table before recreating the schema
		log.Println("WARNING: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("Failed to drop and recreate tables: %v", err)
		}
	} else {
		// Default AutoMigrate only adds new columns and tables
		log.Println("Running in standard mode, only new columns and tables will be added")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("Auto migration failed: %v", err)
		}
	}

	// The picklist endpoint serves a singleton row which must exist
	seedPicklistValues(db)

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort

	printSystemInfo(pool)

	// Listen on all interfaces, not just localhost
	Logger.Info("Server starting at: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// autoMigrate migrates all models (only adds new columns and tables)
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Household{},
		&models.Address{},
		&models.Event{},
		&models.Gift{},
		&models.Card{},
		&models.Picklists{},
	)

	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops every table and recreates the schema
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	// Disable foreign key checks while dropping
	_, err = sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0")
	if err != nil {
		log.Printf("Failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"card", "gift", "event", "address", "household", "picklist_values",
	}

	for _, table := range tables {
		log.Printf("Dropping table: %s", table)
		_, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table))
		if err != nil {
			log.Printf("Failed to drop table: %v", err)
		}
	}

	return autoMigrate(db)
}

// seedPicklistValues creates the default picklist row if it does not exist
func seedPicklistValues(db *gorm.DB) {
	var count int64
	db.Model(&models.Picklists{}).Where("version = ?", models.DefaultPicklistVersion).Count(&count)

	if count == 0 {
		picklists := models.Picklists{
			Version:                   models.DefaultPicklistVersion,
			CardStatus:                "New,Written,Addressed,Sent",
			CardType:                  "Thank You,Holiday,Greeting,Other",
			HouseholdRelationship:     "Parents,Grandparents,Siblings,Aunts & Uncles,Cousins,Friends,Coworkers,Neighbors",
			HouseholdRelationshipType: "Family,Friends,Acquaintances",
			HouseholdFamilySide:       "Mine,Spouse",
		}

		if err := db.Create(&picklists).Error; err != nil {
			log.Fatalf("Failed to seed picklist values: %v", err)
		}

		log.Println("Seeded default picklist values")
	}
}

// printSystemInfo logs connection pool and runtime stats at startup
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("Database connection pool status: %+v", stats)
	}

	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("Goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Memory usage: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
