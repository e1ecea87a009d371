package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config holds all configuration for the Postbox application
type Config struct {
	// ServerURL is the base URL of the webmail backend
	ServerURL string `json:"server_url"`

	// RequestTimeout is the per-request timeout (Go duration string)
	RequestTimeout string `json:"request_timeout"`

	// Keyboard shortcuts
	Keys KeyBindings `json:"keys"`

	// UI customization
	UI UIConfig `json:"ui"`

	// Logging
	LogFile string `json:"log_file"`
}

// KeyBindings defines keyboard shortcuts for the TUI
type KeyBindings struct {
	Compose string `json:"compose"`
	Reply   string `json:"reply"`
	Star    string `json:"star"`
	Spam    string `json:"spam"`
	Refresh string `json:"refresh"`
	Logout  string `json:"logout"`
	Help    string `json:"help"`
	Quit    string `json:"quit"`
}

// UIConfig defines UI-specific configuration
type UIConfig struct {
	ShowBorders    bool   `json:"show_borders"`
	ShowTitles     bool   `json:"show_titles"`
	CurrentTheme   string `json:"current_theme"`    // Active theme name (e.g., "postbox-dark")
	CustomThemeDir string `json:"custom_theme_dir"` // Custom themes directory (empty = default)
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ServerURL:      "http://localhost:5000",
		RequestTimeout: "10s",
		Keys:           DefaultKeyBindings(),
		UI:             DefaultUIConfig(),
		LogFile:        "",
	}
}

// DefaultKeyBindings returns default keyboard shortcuts
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Compose: "c",
		Reply:   "r",
		Star:    "s",
		Spam:    "p",
		Refresh: "R",
		Logout:  "L",
		Help:    "?",
		Quit:    "q",
	}
}

// DefaultUIConfig returns default UI configuration
func DefaultUIConfig() UIConfig {
	return UIConfig{
		ShowBorders:    true,
		ShowTitles:     true,
		CurrentTheme:   "postbox-dark",
		CustomThemeDir: "",
	}
}

// LoadConfig loads configuration from file, falling back to defaults for
// anything the file does not set
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	return cfg, nil
}

// DefaultConfigPath returns the default configuration file path
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "postbox", "config.json")
}

// DefaultLogDir returns the default log directory path
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "postbox")
}

// DefaultThemesDir returns the default themes directory path
func DefaultThemesDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "postbox", "themes")
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// GetRequestTimeout returns the parsed request timeout
func (c *Config) GetRequestTimeout() time.Duration {
	if c.RequestTimeout != "" {
		if d, err := time.ParseDuration(c.RequestTimeout); err == nil {
			return d
		}
	}
	return 10 * time.Second
}
