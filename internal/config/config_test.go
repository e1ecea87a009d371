package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Equal(t, "10s", cfg.RequestTimeout)
	assert.Equal(t, "c", cfg.Keys.Compose)
	assert.Equal(t, "q", cfg.Keys.Quit)
	assert.True(t, cfg.UI.ShowBorders)
	assert.Equal(t, "postbox-dark", cfg.UI.CurrentTheme)
}

func TestLoadConfig_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.json"))

	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_EmptyPathFallsBackToDefaults(t *testing.T) {
	cfg, err := LoadConfig("")

	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{"server_url": "http://mail.local", "keys": {"compose": "n"}}`), 0644)
	assert.NoError(t, err)

	cfg, err := LoadConfig(path)

	assert.NoError(t, err)
	assert.Equal(t, "http://mail.local", cfg.ServerURL)
	assert.Equal(t, "n", cfg.Keys.Compose)
	// Unset fields keep their defaults
	assert.Equal(t, "r", cfg.Keys.Reply)
	assert.Equal(t, "10s", cfg.RequestTimeout)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{not json`), 0644)
	assert.NoError(t, err)

	_, err = LoadConfig(path)

	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.ServerURL = "http://mail.local"

	assert.NoError(t, cfg.SaveConfig(path))

	loaded, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetRequestTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10*time.Second, cfg.GetRequestTimeout())

	cfg.RequestTimeout = "250ms"
	assert.Equal(t, 250*time.Millisecond, cfg.GetRequestTimeout())

	cfg.RequestTimeout = "not-a-duration"
	assert.Equal(t, 10*time.Second, cfg.GetRequestTimeout())

	cfg.RequestTimeout = ""
	assert.Equal(t, 10*time.Second, cfg.GetRequestTimeout())
}
