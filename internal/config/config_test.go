package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "APP_ENV", "UPLOAD_USERS", "UPLOAD_PASSWORD", "MAX_FILE_SIZE",
		"STORAGE_ENDPOINT", "STORAGE_ACCESS_KEY", "STORAGE_SECRET_KEY",
		"STORAGE_BUCKET", "STORAGE_USE_SSL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "admin:admin", cfg.UploadUsers)
	assert.Equal(t, int64(DefaultMaxFileSizeMB), cfg.MaxFileSizeMB)
	assert.Equal(t, "localhost:9000", cfg.StorageEndpoint)
	assert.Equal(t, "images", cfg.StorageBucket)
	assert.False(t, cfg.StorageUseSSL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("UPLOAD_USERS", "alice:one,bob:two")
	t.Setenv("MAX_FILE_SIZE", "10")
	t.Setenv("STORAGE_ENDPOINT", "minio.internal:9000")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "alice:one,bob:two", cfg.UploadUsers)
	assert.Equal(t, int64(10), cfg.MaxFileSizeMB)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileBytes())
	assert.Equal(t, "minio.internal:9000", cfg.StorageEndpoint)
	assert.True(t, cfg.StorageUseSSL)
}

func TestLoadLegacySinglePassword(t *testing.T) {
	t.Setenv("UPLOAD_USERS", "")
	t.Setenv("UPLOAD_PASSWORD", "hunter2")

	cfg := Load()
	assert.Equal(t, "hunter2", cfg.UploadUsers)
}

func TestLoadInvalidSizeFallsBack(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	cfg := Load()
	assert.Equal(t, int64(DefaultMaxFileSizeMB), cfg.MaxFileSizeMB)

	t.Setenv("MAX_FILE_SIZE", "-5")
	cfg = Load()
	assert.Equal(t, int64(DefaultMaxFileSizeMB), cfg.MaxFileSizeMB)
}
