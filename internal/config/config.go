// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultMaxFileSizeMB is the upload size limit applied when no override is set.
const DefaultMaxFileSizeMB = 50

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// Shared upload credentials: either "user1:pass1,user2:pass2" pairs or a
	// bare password for the implicit "admin" identity (single-password mode).
	UploadUsers string

	// Upload size limit in megabytes.
	MaxFileSizeMB int64

	// Object storage (S3-compatible: MinIO locally, R2/any S3 in production)
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	users := os.Getenv("UPLOAD_USERS")
	if users == "" {
		// Legacy single-password deployments configure UPLOAD_PASSWORD only.
		users = getEnv("UPLOAD_PASSWORD", "admin:admin")
	}

	return &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		UploadUsers:   users,
		MaxFileSizeMB: getEnvInt("MAX_FILE_SIZE", DefaultMaxFileSizeMB),

		StorageEndpoint:  getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey: getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "images"),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",
	}
}

// MaxFileBytes returns the upload size limit in bytes.
func (c *Config) MaxFileBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		log.Printf("config: invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
