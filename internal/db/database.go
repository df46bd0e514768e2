package db

import (
	"fmt"
	"log"
	"os"

	"garagehub/pkg/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase creates a new database connection
func NewDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		os.Getenv("DB_TIMEZONE"),
	)

	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate runs database migrations using GORM
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running GORM AutoMigrate...")

	// Create required extensions first
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Printf("Warning: Could not create uuid-ossp extension: %v", err)
	}

	if err := db.AutoMigrate(models.GetAllModels()...); err != nil {
		return fmt.Errorf("failed to run GORM AutoMigrate: %w", err)
	}

	if err := createCustomIndexes(db); err != nil {
		log.Printf("Warning: Failed to create some custom indexes: %v", err)
	}

	log.Println("GORM AutoMigrate completed successfully")
	return nil
}

// createCustomIndexes creates any custom indexes that GORM might not handle
func createCustomIndexes(db *gorm.DB) error {
	indexes := []string{
		// Display-order lookups for the profile page
		`CREATE INDEX IF NOT EXISTS idx_garage_services_garage_position ON garage_services(garage_id, position)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_garage_position ON reviews(garage_id, position)`,

		// Newest-first admin listing of callback requests
		`CREATE INDEX IF NOT EXISTS idx_callback_requests_garage_created ON callback_requests(garage_id, created_at DESC)`,
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s - %v", idx, err)
		}
	}

	return nil
}

// SeedInitialData creates a demo garage with a default week when the
// database is empty
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var garageCount int64
	if err := db.Model(&models.Garage{}).Count(&garageCount).Error; err != nil {
		return fmt.Errorf("failed to check existing garages: %w", err)
	}

	if garageCount > 0 {
		return nil
	}

	garage := models.Garage{
		Slug:               "demo-garage",
		BusinessName:       "Demo Garage",
		OneLineDescription: "MOTs, servicing and repairs",
		AboutText:          "A friendly local garage.",
		Timezone:           "Europe/London",
	}
	if err := db.Create(&garage).Error; err != nil {
		return fmt.Errorf("failed to create demo garage: %w", err)
	}

	openTime := "09:00"
	closeTime := "17:30"
	for day := 1; day <= 7; day++ {
		row := models.OpeningHours{
			GarageID:  garage.ID,
			DayOfWeek: day,
		}
		// Weekdays open, weekend closed.
		if day <= 5 {
			row.IsOpen = true
			row.OpenTime = &openTime
			row.CloseTime = &closeTime
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to seed opening hours for day %d: %w", day, err)
		}
	}

	log.Println("Demo garage created successfully")
	return nil
}

// RunMigrations is the main migration function called from main.go
func RunMigrations(db *gorm.DB) error {
	log.Println("Starting database migrations...")

	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	if err := SeedInitialData(db); err != nil {
		return fmt.Errorf("initial data seeding failed: %w", err)
	}

	log.Println("All migrations completed successfully")
	return nil
}
