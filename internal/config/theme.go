package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ThemeLoader handles loading themes from YAML files
type ThemeLoader struct {
	themesDir string
}

// NewThemeLoader creates a new theme loader
func NewThemeLoader(themesDir string) *ThemeLoader {
	return &ThemeLoader{
		themesDir: themesDir,
	}
}

// LoadThemeFromFile loads a theme from a YAML file
func (tl *ThemeLoader) LoadThemeFromFile(filename string) (*ColorsConfig, error) {
	// Try to load from themes directory first
	path := filepath.Join(tl.themesDir, filename)
	if !fileExists(path) {
		// Try absolute path
		path = filename
		if !fileExists(path) {
			return nil, fmt.Errorf("theme file not found: %s", filename)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	var theme struct {
		Postbox *ColorsConfig `yaml:"postbox"`
	}

	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme file: %w", err)
	}

	if theme.Postbox == nil {
		return nil, fmt.Errorf("invalid theme file: missing postbox section")
	}

	return theme.Postbox, nil
}

// ListAvailableThemes returns a list of available theme files
func (tl *ThemeLoader) ListAvailableThemes() ([]string, error) {
	var themes []string

	entries, err := os.ReadDir(tl.themesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".yaml" {
			themes = append(themes, entry.Name())
		}
	}

	return themes, nil
}

// SaveThemeToFile saves a theme configuration to a YAML file
func (tl *ThemeLoader) SaveThemeToFile(theme *ColorsConfig, filename string) error {
	if err := os.MkdirAll(tl.themesDir, 0755); err != nil {
		return fmt.Errorf("failed to create themes directory: %w", err)
	}

	wrapped := struct {
		Postbox *ColorsConfig `yaml:"postbox"`
	}{Postbox: theme}

	data, err := yaml.Marshal(wrapped)
	if err != nil {
		return fmt.Errorf("failed to serialize theme: %w", err)
	}

	path := filepath.Join(tl.themesDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
