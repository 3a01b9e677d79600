// Package config loads the tracker configuration from the fittrack
// home directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// HomeEnv overrides the fittrack home directory. A .env file in the
// working directory may set it; tests use it to stay out of $HOME.
const HomeEnv = "FITTRACK_HOME"

// Config represents the application configuration
type Config struct {
	Feed    FeedConfig    `json:"feed"`
	Display DisplayConfig `json:"display"`
}

// FeedConfig points at the sensor packet feed
type FeedConfig struct {
	Path string `json:"path"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	ChartHeight int  `json:"chart_height"`
	NoTUI       bool `json:"no_tui"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			ChartHeight: 8,
		},
	}
}

// Load reads the configuration from <home>/config.json
func Load() (*Config, error) {
	// .env is optional; ignore a missing file
	_ = godotenv.Load()

	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.ChartHeight == 0 {
		cfg.Display.ChartHeight = defaults.Display.ChartHeight
	}

	return &cfg, nil
}

// Save writes the configuration to <home>/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := Config{
		Feed: FeedConfig{
			Path: "",
		},
		Display: DisplayConfig{
			ChartHeight: 8,
		},
	}

	return Save(&example)
}

// Validate checks if the config has usable values
func (c *Config) Validate() error {
	if c.Display.ChartHeight < 0 || c.Display.ChartHeight > 20 {
		return fmt.Errorf("display.chart_height must be between 1 and 20, got %d", c.Display.ChartHeight)
	}
	return nil
}

// GetConfigDir returns the path to the fittrack home directory.
// FITTRACK_HOME wins over the default <user home>/.fittrack.
func GetConfigDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".fittrack"), nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}
