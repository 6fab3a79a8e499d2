package client

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imgbed", "config.json")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.PrimaryURL)
	assert.Empty(t, cfg.Token)
	assert.Empty(t, cfg.History)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imgbed", "config.json")

	cfg := &Config{
		PrimaryURL:  "https://img.example.com",
		FallbackURL: "https://origin.example.com",
		Username:    "alice",
		Token:       "dG9rZW4=",
		MaxRetries:  5,
	}
	cfg.AddHistory(HistoryEntry{
		FileID:      "m1abc-xyz",
		FileName:    "cat.png",
		FileSize:    1234,
		ContentType: "image/png",
		URL:         "https://img.example.com/api/file/m1abc-xyz",
	})
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	// Tokens end up in this file, so it must not be group or world readable.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigFillsDefaultPrimary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"username":"alice"}`), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, cfg.PrimaryURL)
	assert.Equal(t, "alice", cfg.Username)
}

func TestLoadConfigRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestAddHistoryPrependsAndCaps(t *testing.T) {
	cfg := &Config{}
	for i := 0; i < historyLimit+10; i++ {
		cfg.AddHistory(HistoryEntry{FileID: fmt.Sprintf("id-%d", i)})
	}

	assert.Len(t, cfg.History, historyLimit)
	// Newest first; the oldest ten fell off the end.
	assert.Equal(t, fmt.Sprintf("id-%d", historyLimit+9), cfg.History[0].FileID)
	assert.Equal(t, "id-10", cfg.History[historyLimit-1].FileID)
}
