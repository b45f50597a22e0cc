package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/routes"
	"github.com/polockprog2/FreshMart-sub000/storage"
	"github.com/polockprog2/FreshMart-sub000/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Durable snapshot storage (cart, session, banners, language)
	st := initStorage()
	defer st.Close()

	// Mock backend repositories
	latency := mockLatency()
	products := mockapi.NewProductRepo(latency)
	orders := mockapi.NewOrderRepo(latency)
	users := mockapi.NewUserRepo(latency)
	dashboard := mockapi.NewDashboard(products, orders, users, latency)

	// State stores, rehydrated from storage
	deps := routes.Deps{
		Products:  products,
		Orders:    orders,
		Users:     users,
		Dashboard: dashboard,
		Cart:      store.NewCart(st),
		Auth:      store.NewAuth(users, st),
		Banners:   store.NewBanners(st),
		Language:  store.NewLanguage(st),
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, deps)

	// Back up the snapshot database at 2 AM daily, keep 4 days of backups
	if bolt, ok := st.(*storage.Bolt); ok {
		backupDir := filepath.Join(filepath.Dir(bolt.Path()), "backup")
		go startDailyBackupAtFixedTime(bolt.Path(), backupDir, 4*24*time.Hour, 2, 0)
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

// initStorage opens the bbolt snapshot store at FRESHMART_DATA.
func initStorage() storage.Store {
	path := os.Getenv("FRESHMART_DATA")
	if path == "" {
		path = "freshmart.db"
	}
	st, err := storage.OpenBolt(path)
	if err != nil {
		log.Fatalf("❌ Failed to open snapshot storage: %v", err)
	}
	return st
}

// mockLatency reads the simulated backend delay from MOCK_LATENCY_MS.
func mockLatency() time.Duration {
	if v := os.Getenv("MOCK_LATENCY_MS"); v != "" {
		return time.Duration(cast.ToInt(v)) * time.Millisecond
	}
	return mockapi.DefaultLatency
}

// startDailyBackupAtFixedTime copies the snapshot database daily at a fixed
// hour and removes old backups.
func startDailyBackupAtFixedTime(srcFile, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		sleepDuration := next.Sub(now)
		log.Printf("⏳ Next snapshot backup scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(sleepDuration)

		timestamp := time.Now().Format("2006-01-02_15-04-05")
		destFile := filepath.Join(backupDir, timestamp+"_"+filepath.Base(srcFile))

		if err := copyFile(srcFile, destFile); err != nil {
			log.Printf("❌ Failed to back up snapshot database: %v", err)
		} else {
			log.Printf("✅ Snapshot database backed up to %s", destFile)
		}

		cleanupOldBackups(backupDir, retention)
	}
}

// copyFile copies a single file, creating the destination directory.
func copyFile(src, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

// cleanupOldBackups removes backup files older than retention duration.
func cleanupOldBackups(backupDir string, retention time.Duration) {
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
		filePath := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(filePath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filePath); err != nil {
				log.Printf("❌ Failed to remove old backup %s: %v", filePath, err)
			} else {
				log.Printf("🗑️ Removed old backup: %s", filePath)
			}
		}
	}
}
