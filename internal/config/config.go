// Package config loads application configuration via viper from
// ~/.config/epview/config.yaml with EPVIEW_* environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Spotify SpotifyConfig `mapstructure:"spotify"`
	Browse  BrowseConfig  `mapstructure:"browse"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SpotifyConfig holds catalog API credentials and locale
type SpotifyConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	Market       string `mapstructure:"market"` // ISO country code for catalog requests
}

// BrowseConfig holds browsing preferences
type BrowseConfig struct {
	PageSize    int `mapstructure:"page_size"`    // Default episodes per page
	SearchLimit int `mapstructure:"search_limit"` // Max show search results
}

// CacheConfig holds local cache settings
type CacheConfig struct {
	Dir        string `mapstructure:"dir"`         // Cache directory; empty disables persistence
	TTLMinutes int    `mapstructure:"ttl_minutes"` // Episode snapshot freshness window
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Spotify: SpotifyConfig{
			Market: "US",
		},
		Browse: BrowseConfig{
			PageSize:    10,
			SearchLimit: 20,
		},
		Cache: CacheConfig{
			Dir:        defaultCachePath(),
			TTLMinutes: 60,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// IsConfigured returns true if API credentials are set
func (c *Config) IsConfigured() bool {
	return c.Spotify.ClientID != "" && c.Spotify.ClientSecret != ""
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "epview", "epview.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "epview", "epview.log")
	}
}

// defaultCachePath returns the default cache directory for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "epview", "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "epview", "cache")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "epview")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "epview")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("EPVIEW")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveCredentials persists API credentials to the config file, creating it
// when missing.
func SaveCredentials(clientID, clientSecret string) error {
	viper.Set("spotify.client_id", clientID)
	viper.Set("spotify.client_secret", clientSecret)

	configPath := defaultConfigPath()
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
