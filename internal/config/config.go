// Cropcast - Crop Yield Prediction and Recommendation Service
// Copyright 2026 Cropcast Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cropcast/cropcast

// Package config provides layered configuration for Cropcast using Koanf v2.
//
// Configuration is loaded with the following precedence (highest wins):
//
//  1. Environment variables (MODEL_PATH, HTTP_PORT, ...)
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Built-in defaults
//
// The observation bounds used for request validation live in LimitsConfig so
// the artifact and the accepted input ranges can evolve without code changes.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for the Cropcast server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Model    ModelConfig    `koanf:"model"`
	API      APIConfig      `koanf:"api"`
	Limits   LimitsConfig   `koanf:"limits"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development" or "production"
}

// ModelConfig holds model artifact settings.
//
// Path and MetadataPath point at the JSON export produced by the offline
// training pipeline. When ReloadEnabled is true, a supervised background
// service polls both files and atomically swaps in a fresh artifact when
// either changes on disk.
type ModelConfig struct {
	Path           string        `koanf:"path"`
	MetadataPath   string        `koanf:"metadata_path"`
	ReloadEnabled  bool          `koanf:"reload_enabled"`
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	// DefaultTopN is the number of recommendations returned when the client
	// omits top_n.
	DefaultTopN int `koanf:"default_top_n"`

	// MaxTopN is the upper bound accepted for top_n.
	MaxTopN int `koanf:"max_top_n"`

	// MaxCountriesInInfo caps the supported-country list returned by the
	// model info endpoint to keep the response small.
	MaxCountriesInInfo int `koanf:"max_countries_in_info"`
}

// LimitsConfig holds the accepted bounds for environmental observations.
// Requests with values outside these bounds are rejected before inference.
type LimitsConfig struct {
	RainfallMinMM     float64 `koanf:"rainfall_min_mm"`
	RainfallMaxMM     float64 `koanf:"rainfall_max_mm"`
	PesticidesMinT    float64 `koanf:"pesticides_min_tonnes"`
	PesticidesMaxT    float64 `koanf:"pesticides_max_tonnes"`
	AvgTempMinC       float64 `koanf:"avg_temp_min_c"`
	AvgTempMaxC       float64 `koanf:"avg_temp_max_c"`
}

// SecurityConfig holds authentication and transport-protection settings.
type SecurityConfig struct {
	// AuthMode selects the authentication scheme: "none", "basic", or "jwt".
	AuthMode string `koanf:"auth_mode"`

	// JWTSecret signs tokens when AuthMode is "jwt". Must be at least 32
	// characters in production.
	JWTSecret      string        `koanf:"jwt_secret"`
	SessionTimeout time.Duration `koanf:"session_timeout"`

	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Environment, "development")
}

// ShouldWarnAboutCORS reports whether the configuration combines wildcard
// CORS with authentication, which allows credential theft via any origin.
func (c *Config) ShouldWarnAboutCORS() bool {
	if c.Security.AuthMode == "none" {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// Validate checks the configuration for consistency.
// It is called after loading, before any component is constructed.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateModel(); err != nil {
		return err
	}
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateLimits(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	switch strings.ToLower(c.Server.Environment) {
	case "development", "production":
	default:
		return fmt.Errorf("server.environment must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateModel() error {
	if c.Model.Path == "" {
		return fmt.Errorf("model.path is required")
	}
	if c.Model.MetadataPath == "" {
		return fmt.Errorf("model.metadata_path is required")
	}
	if c.Model.ReloadEnabled && c.Model.ReloadInterval < time.Second {
		return fmt.Errorf("model.reload_interval must be at least 1s when reload is enabled, got %s", c.Model.ReloadInterval)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.DefaultTopN < 1 {
		return fmt.Errorf("api.default_top_n must be at least 1, got %d", c.API.DefaultTopN)
	}
	if c.API.MaxTopN < c.API.DefaultTopN {
		return fmt.Errorf("api.max_top_n (%d) must not be below api.default_top_n (%d)", c.API.MaxTopN, c.API.DefaultTopN)
	}
	if c.API.MaxCountriesInInfo < 1 {
		return fmt.Errorf("api.max_countries_in_info must be at least 1, got %d", c.API.MaxCountriesInInfo)
	}
	return nil
}

func (c *Config) validateLimits() error {
	if c.Limits.RainfallMinMM > c.Limits.RainfallMaxMM {
		return fmt.Errorf("limits: rainfall bounds inverted (%g > %g)", c.Limits.RainfallMinMM, c.Limits.RainfallMaxMM)
	}
	if c.Limits.PesticidesMinT > c.Limits.PesticidesMaxT {
		return fmt.Errorf("limits: pesticides bounds inverted (%g > %g)", c.Limits.PesticidesMinT, c.Limits.PesticidesMaxT)
	}
	if c.Limits.AvgTempMinC >= c.Limits.AvgTempMaxC {
		return fmt.Errorf("limits: temperature bounds inverted (%g >= %g)", c.Limits.AvgTempMinC, c.Limits.AvgTempMaxC)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	switch c.Security.AuthMode {
	case "none", "basic", "jwt":
	default:
		return fmt.Errorf("security.auth_mode must be none, basic, or jwt, got %q", c.Security.AuthMode)
	}

	if c.Security.AuthMode == "jwt" {
		if len(c.Security.JWTSecret) < 32 {
			return fmt.Errorf("security.jwt_secret must be at least 32 characters when auth_mode is jwt")
		}
		if c.Security.AdminUsername == "" || c.Security.AdminPassword == "" {
			return fmt.Errorf("security.admin_username and security.admin_password are required when auth_mode is jwt")
		}
	}
	if c.Security.AuthMode == "basic" {
		if c.Security.AdminUsername == "" || c.Security.AdminPassword == "" {
			return fmt.Errorf("security.admin_username and security.admin_password are required when auth_mode is basic")
		}
		if len(c.Security.AdminPassword) < 8 {
			return fmt.Errorf("security.admin_password must be at least 8 characters")
		}
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow < time.Second {
			return fmt.Errorf("security.rate_limit_window must be at least 1s, got %s", c.Security.RateLimitWindow)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// Load loads the configuration with layered sources.
// This is the entry point used by main().
func Load() (*Config, error) {
	return LoadWithKoanf()
}
