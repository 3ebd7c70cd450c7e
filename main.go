package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/FalcurmartEsui/shopfront-forge-37/cart"
	"github.com/FalcurmartEsui/shopfront-forge-37/models"
	"github.com/FalcurmartEsui/shopfront-forge-37/notify"
	"github.com/FalcurmartEsui/shopfront-forge-37/routes"
)

func main() {
	log.Println("✅ Starting Falccur Mart API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Seller{},
		&models.Customer{},
		&models.Product{},
		&models.ProductImage{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Banner{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Carts live in memory, written through to the DB so they survive restarts
	carts := cart.NewStore(cart.NewGormPersister(db))

	// New-order events for seller dashboards
	hub := notify.NewHub()

	// Gin setup
	r := gin.Default()

	// Product images stay small; 32 MB is plenty for multipart uploads
	r.MaxMultipartMemory = 32 << 20

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, db, carts, hub)

	// Back up uploaded images daily at 2 AM, keep 4 days of backups
	if backupDir := os.Getenv("UPLOADS_BACKUP_DIR"); backupDir != "" {
		go startDailyBackup(uploadsDir, backupDir, 4*24*time.Hour, 2)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// startDailyBackup snapshots the uploads folder once a day at the given hour
// and prunes snapshots older than the retention window.
func startDailyBackup(srcDir, backupDir string, retention time.Duration, hour int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next image backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		dest := filepath.Join(backupDir, time.Now().Format("2006-01-02_15-04-05"))
		if err := os.CopyFS(dest, os.DirFS(srcDir)); err != nil {
			log.Printf("❌ Failed to back up images: %v", err)
		} else {
			log.Printf("✅ Images backed up to %s", dest)
		}

		pruneOldBackups(backupDir, retention)
	}
}

// pruneOldBackups removes snapshot folders older than the retention window.
func pruneOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read backup directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			log.Printf("❌ Failed to remove old backup %s: %v", path, err)
		} else {
			log.Printf("🗑️ Removed old backup: %s", path)
		}
	}
}
