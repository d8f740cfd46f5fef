package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	dataControllers "github.com/Biomedionics123/Biomedionics/controllers/data"
	"github.com/Biomedionics123/Biomedionics/middleware"
	"github.com/Biomedionics123/Biomedionics/routes"
	"github.com/Biomedionics123/Biomedionics/store"
)

func main() {
	log.Println("✅ Starting Biomedionics storefront...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB (embedded SQLite, no server required)
	dbPath := getEnv("DB_PATH", "biomedionics.db")
	db, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("❌ DB init failed: %v", err)
	}

	// Seed starter content into empty collections
	if err := store.Seed(db); err != nil {
		log.Fatalf("❌ Seed failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnv("CORS_ORIGIN", "*")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Cookie sessions carry the visitor's cart/wishlist key and the admin flag
	sessionStore := cookie.NewStore([]byte(getEnv("SESSION_SECRET", "change-me")))
	r.Use(sessions.Sessions("biomedionics_session", sessionStore))
	r.Use(middleware.EnsureSession)

	// Setup routes
	routes.SetupRoutes(r, db)

	// Nightly JSON snapshot of the full site data at 2 AM, keep 4 days
	backupDir := getEnv("BACKUP_DIR", "backup")
	go startDailySnapshotAtFixedTime(db, backupDir, 4*24*time.Hour, 2, 0)

	// Start server
	port := getEnv("PORT", "8080")
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// startDailySnapshotAtFixedTime writes a full-site JSON export daily at a
// fixed hour and removes snapshots older than the retention window.
func startDailySnapshotAtFixedTime(db *gorm.DB, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next data snapshot scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		if err := writeSnapshot(db, backupDir); err != nil {
			log.Printf("❌ Failed to write data snapshot: %v", err)
		}
		cleanupOldSnapshots(backupDir, retention)
	}
}

func writeSnapshot(db *gorm.DB, backupDir string) error {
	data, err := dataControllers.Collect(db)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return err
	}

	name := "site-data_" + time.Now().Format("2006-01-02_15-04-05") + ".json"
	path := filepath.Join(backupDir, name)

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return err
	}
	log.Printf("✅ Site data snapshot written to %s", path)
	return nil
}

// cleanupOldSnapshots removes snapshot files older than retention duration.
func cleanupOldSnapshots(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Printf("❌ Failed to remove old snapshot %s: %v", path, err)
			} else {
				log.Printf("🗑️ Removed old snapshot: %s", path)
			}
		}
	}
}
