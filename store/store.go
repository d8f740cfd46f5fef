package store

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Biomedionics123/Biomedionics/models"
)

// Open connects to the embedded SQLite database at path and migrates every
// collection. Use ":memory:" for throwaway databases in tests.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the table for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Notification{},
		&models.BlogPost{},
		&models.DynamicPage{},
		&models.SiteSettings{},
		&models.AppearanceSettings{},
	)
}

// SiteSettings returns the singleton settings row, falling back to the seeded
// defaults when the row is missing or unreadable.
func SiteSettings(db *gorm.DB) models.SiteSettings {
	var s models.SiteSettings
	if err := db.First(&s, 1).Error; err != nil {
		log.Printf("⚠️ site settings unreadable, using defaults: %v", err)
		return defaultSiteSettings()
	}
	return s
}

// AppearanceSettings returns the singleton appearance row with the same
// default fallback.
func AppearanceSettings(db *gorm.DB) models.AppearanceSettings {
	var s models.AppearanceSettings
	if err := db.First(&s, 1).Error; err != nil {
		log.Printf("⚠️ appearance settings unreadable, using defaults: %v", err)
		return defaultAppearanceSettings()
	}
	return s
}
