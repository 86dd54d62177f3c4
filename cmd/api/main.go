package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/qrmenupro/qrmenu-golang/internal/assets"
	"github.com/qrmenupro/qrmenu-golang/internal/auth"
	"github.com/qrmenupro/qrmenu-golang/internal/config"
	"github.com/qrmenupro/qrmenu-golang/internal/database"
	"github.com/qrmenupro/qrmenu-golang/internal/handlers"
	"github.com/qrmenupro/qrmenu-golang/internal/menu"
	"github.com/qrmenupro/qrmenu-golang/internal/routes"
	"github.com/qrmenupro/qrmenu-golang/internal/store"
)

func main() {
	// --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
	cfg := config.Load()

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	db := client.Database(cfg.MongoDB)

	// --- Services ---
	categoryStore := store.NewCategoryStore(db)
	productStore := store.NewProductStore(db)

	assetService, err := assets.NewService(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	// We inject ALL dependencies into the Handlers struct.
	app := &handlers.Handlers{
		Categories:    menu.NewCategoryService(categoryStore, productStore),
		Products:      menu.NewProductService(productStore, categoryStore),
		Tokens:        auth.NewTokenService(cfg.SecretKey, cfg.TokenTTL),
		Assets:        assetService,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	}

	// --- Router Setup ---
	router := routes.SetupRouter(app, cfg.UploadDir)

	// --- Start Server ---
	log.Printf("Starting QR Menu API server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
