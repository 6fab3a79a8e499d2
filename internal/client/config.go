package client

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// historyLimit caps the local upload history; the gateway is the system of
// record, this is a disposable convenience cache.
const historyLimit = 50

// DefaultServerURL is used when no endpoint has been configured yet.
const DefaultServerURL = "http://localhost:8080"

// HistoryEntry records one past upload for local display.
type HistoryEntry struct {
	FileID      string `json:"fileId"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
	UploadTime  string `json:"uploadTime"`
}

// Config is the client's persisted state.
type Config struct {
	// PrimaryURL is the preferred (typically edge-accelerated) endpoint;
	// FallbackURL is the origin used when the primary cannot answer.
	PrimaryURL  string `json:"primary_url"`
	FallbackURL string `json:"fallback_url,omitempty"`

	Username   string         `json:"username,omitempty"`
	Token      string         `json:"token,omitempty"`
	MaxRetries int            `json:"max_retries,omitempty"`
	History    []HistoryEntry `json:"history,omitempty"`
}

// LoadConfig reads the config file, returning defaults if it does not exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{PrimaryURL: DefaultServerURL}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.PrimaryURL == "" {
		cfg.PrimaryURL = DefaultServerURL
	}
	return &cfg, nil
}

// SaveConfig writes the config file, creating its directory if needed.
func SaveConfig(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// ConfigPath returns the default config file location.
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "imgbed", "config.json"), nil
}

// AddHistory prepends an entry, trimming the history to its cap.
func (c *Config) AddHistory(e HistoryEntry) {
	c.History = append([]HistoryEntry{e}, c.History...)
	if len(c.History) > historyLimit {
		c.History = c.History[:historyLimit]
	}
}
