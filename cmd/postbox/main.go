package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/averde/postbox/internal/api"
	"github.com/averde/postbox/internal/config"
	"github.com/averde/postbox/internal/tui"
	"github.com/averde/postbox/internal/version"
)

func main() {
	// Essential command line flags only (GNU-style double dashes)
	configPathFlag := flag.String("config", "", "Path to JSON configuration file (default: ~/.config/postbox/config.json)")
	serverFlag := flag.String("server", "", "Base URL of the webmail backend (default: http://localhost:5000)")
	versionFlag := flag.Bool("version", false, "Show version information and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\n", version.GetVersionString())
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s                               # Run with default configuration\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --server http://mail.local    # Point at a different backend\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --config custom.json          # Use custom configuration\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  --config string\n        Path to JSON configuration file (default: ~/.config/postbox/config.json)\n")
		fmt.Fprintf(os.Stderr, "  --server string\n        Base URL of the webmail backend (default: http://localhost:5000)\n")
		fmt.Fprintf(os.Stderr, "  --version\n        Show version information and exit\n\n")
		fmt.Fprintf(os.Stderr, "Environment Variables:\n")
		fmt.Fprintf(os.Stderr, "  POSTBOX_CONFIG  Override default config file path\n")
		fmt.Fprintf(os.Stderr, "  POSTBOX_SERVER  Override default backend URL\n\n")
		fmt.Fprintf(os.Stderr, "For all other settings (key bindings, theme, timeouts), edit the config file.\n")
	}

	flag.Parse()

	if *versionFlag {
		fmt.Println(version.GetDetailedVersionString())
		return
	}

	configPath := getConfigPath(*configPathFlag)

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: could not load configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	serverURL := getServerURL(*serverFlag, cfg.ServerURL)

	client, err := api.NewClient(serverURL, cfg.GetRequestTimeout())
	if err != nil {
		log.Fatalf("Could not initialize backend client for %s: %v", serverURL, err)
	}

	app := tui.NewApp(client, cfg)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// getConfigPath returns the configuration file path using the following priority:
// 1. CLI flag
// 2. Environment variable POSTBOX_CONFIG
// 3. Default path ~/.config/postbox/config.json
func getConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envPath := os.Getenv("POSTBOX_CONFIG"); envPath != "" {
		return expandPath(envPath)
	}

	return config.DefaultConfigPath()
}

// getServerURL returns the backend base URL using the following priority:
// 1. CLI flag
// 2. Environment variable POSTBOX_SERVER
// 3. Config file setting
func getServerURL(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}

	if envURL := os.Getenv("POSTBOX_SERVER"); envURL != "" {
		return envURL
	}

	return configValue
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if path == "~" {
		return home
	}

	return filepath.Join(home, path[2:])
}
