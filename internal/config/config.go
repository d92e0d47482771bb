package config

import (
	"log"
	"os"
	"path/filepath"
)

// Config holds application configuration for the server binaries.
type Config struct {
	// Server settings
	ListenAddr string `json:"listen_addr"`
	Debug      bool   `json:"debug"`

	// Directories
	DataDirectory      string `json:"data_directory"`
	ScenariosDirectory string `json:"scenarios_directory"`

	// StorePassword unlocks an encrypted scenario store non-interactively.
	// Never written to disk.
	StorePassword string `json:"-"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	return &Config{
		ListenAddr:         ":8080",
		Debug:              false,
		DataDirectory:      filepath.Join(wd, "data"),
		ScenariosDirectory: filepath.Join(wd, "data", "scenarios"),
	}
}

// Load loads configuration from environment overrides on top of defaults.
func Load() *Config {
	cfg := DefaultConfig()

	if addr := os.Getenv("RCM_LISTEN_ADDR"); addr != "" {
		cfg.ListenAddr = addr
	}
	if debug := os.Getenv("RCM_DEBUG"); debug == "true" || debug == "1" {
		cfg.Debug = true
	}
	if dataDir := os.Getenv("RCM_DATA_DIR"); dataDir != "" {
		cfg.DataDirectory = dataDir
		cfg.ScenariosDirectory = filepath.Join(dataDir, "scenarios")
	}
	cfg.StorePassword = os.Getenv("RCM_STORE_PASSWORD")

	cfg.ensureDirectories()

	return cfg
}

// ensureDirectories creates required directories if they don't exist.
func (c *Config) ensureDirectories() {
	dirs := []string{
		c.DataDirectory,
		c.ScenariosDirectory,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Warning: could not create directory %s: %v", dir, err)
		}
	}
}
