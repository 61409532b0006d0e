/*
Package config - Application Configuration

==============================================================================
FILE: internal/config/app_config.go
==============================================================================

DESCRIPTION:
    Central application configuration. Loads settings from environment
    variables and an optional .env file.

CONFIGURATION SOURCES (priority order):
    1. Environment variables
    2. .env file
    3. Default values in DefaultAppConfig()

==============================================================================
*/
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// AppConfig contains all application configuration.
type AppConfig struct {
	// Server configuration
	ServerPort int    `mapstructure:"SERVER_PORT"`
	Env        string `mapstructure:"ENVIRONMENT"`

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// CORS
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Rate limiting
	RateLimitRequestsPerMinute int `mapstructure:"RATE_LIMIT_REQUESTS_PER_MINUTE"`

	// BedCapacity is the denominator for occupancy-rate reporting. Zero means
	// no capacity was supplied and Report.OccupancyRate stays at zero.
	BedCapacity int `mapstructure:"BED_CAPACITY"`

	// MaxMonthlyReports bounds how many months MonthlyReports returns,
	// counting back from the most recent. Exposed as configuration rather
	// than hardcoded, since whether the cap is business-required is unclear.
	MaxMonthlyReports int `mapstructure:"MAX_MONTHLY_REPORTS"`

	// Upload limits
	MaxUploadSizeMB int `mapstructure:"MAX_UPLOAD_SIZE_MB"`
}

// DefaultAppConfig returns configuration with default values.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		ServerPort:                 8080,
		Env:                        "development",
		LogLevel:                   "info",
		CORSAllowedOrigins:         "*",
		RateLimitRequestsPerMinute: 60,
		BedCapacity:                0,
		MaxMonthlyReports:          36,
		MaxUploadSizeMB:            25,
	}
}

// LoadAppConfig loads configuration from the environment, layered over
// defaults. configDir is accepted for symmetry with callers that locate
// their working directory before loading, but nothing under it is read.
func LoadAppConfig(configDir string) (*AppConfig, error) {
	_ = godotenv.Load()

	config := DefaultAppConfig()

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.ServerPort = port
		}
	}
	if v := os.Getenv("ENVIRONMENT"); v != "" {
		config.Env = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		config.CORSAllowedOrigins = v
	}
	if v := os.Getenv("RATE_LIMIT_REQUESTS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.RateLimitRequestsPerMinute = n
		}
	}
	if v := os.Getenv("BED_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BedCapacity = n
		}
	}
	if v := os.Getenv("MAX_MONTHLY_REPORTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.MaxMonthlyReports = n
		}
	}
	if v := os.Getenv("MAX_UPLOAD_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.MaxUploadSizeMB = n
		}
	}

	return config, nil
}

// IsProduction returns true if environment is production.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// IsDevelopment returns true if environment is development.
func (c *AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}
