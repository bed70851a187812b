// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/skyport/internal/logging"
)

const (
	minRateLimitWindow = 1 * time.Second
	maxRateLimitWindow = 1 * time.Hour
	maxUpstreamTimeout = 5 * time.Minute
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateNASA(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateBreaker(); err != nil {
		return err
	}

	return c.validateLogging()
}

// normalize fills values that may have been blanked by an empty env var or file entry.
func (c *Config) normalize() {
	c.NASA.APIKey = strings.TrimSpace(c.NASA.APIKey)
	if c.NASA.APIKey == "" {
		c.NASA.APIKey = DemoAPIKey
	}
	c.NASA.BaseURL = strings.TrimRight(c.NASA.BaseURL, "/")
	c.NASA.ImagesURL = strings.TrimRight(c.NASA.ImagesURL, "/")
	c.NASA.EPICURL = strings.TrimRight(c.NASA.EPICURL, "/")
}

func (c *Config) validateNASA() error {
	if err := validateHTTPURL(c.NASA.BaseURL, "NASA_API_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.NASA.ImagesURL, "NASA_IMAGES_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.NASA.EPICURL, "NASA_EPIC_URL"); err != nil {
		return err
	}
	if c.NASA.Timeout <= 0 || c.NASA.Timeout > maxUpstreamTimeout {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be between 1ns and %v, got %v", maxUpstreamTimeout, c.NASA.Timeout)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects wildcard origins in production.
func (c *Config) validateCORS() error {
	if c.hasWildcardCORS() && c.IsProduction() {
		return fmt.Errorf("CORS_ORIGINS=* is not allowed when ENVIRONMENT=production; set FRONTEND_URL to the client origin")
	}
	return nil
}

func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateBreaker() error {
	if c.Breaker.Enabled && c.Breaker.Timeout <= 0 {
		return fmt.Errorf("CIRCUIT_BREAKER_TIMEOUT must be positive when the breaker is enabled")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

// ListenAddr returns host:port for the given port.
func (c *Config) ListenAddr(port int) string {
	return fmt.Sprintf("%s:%d", c.Server.Host, port)
}
