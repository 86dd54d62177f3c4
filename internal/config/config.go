package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting the application needs.
// It is loaded once in main and handed to the services explicitly,
// so nothing in the codebase reads the environment on its own.
type Config struct {
	MongoURL  string
	MongoDB   string
	SecretKey string
	TokenTTL  time.Duration

	// The single admin credential pair. There are no user accounts.
	AdminUsername string
	AdminPassword string

	UploadDir string
	Port      string
}

// Load reads the configuration from environment variables,
// falling back to development defaults for anything unset.
func Load() Config {
	ttlMinutes := 30
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			ttlMinutes = n
		}
	}

	return Config{
		MongoURL:      getEnv("MONGO_URL", "mongodb://localhost:27017/qr_menu_db"),
		MongoDB:       getEnv("MONGO_DB", "qr_menu_db"),
		SecretKey:     getEnv("SECRET_KEY", "your-secret-key-change-in-production-2024"),
		TokenTTL:      time.Duration(ttlMinutes) * time.Minute,
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		Port:          getEnv("PORT", "8001"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
