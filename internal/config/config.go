// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package config

import "time"

// DemoAPIKey is the shared api.nasa.gov key used when NASA_API_KEY is unset.
const DemoAPIKey = "DEMO_KEY"

// Config holds all application configuration.
type Config struct {
	NASA     NASAConfig     `koanf:"nasa"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// NASAConfig holds upstream provider settings.
type NASAConfig struct {
	APIKey    string        `koanf:"api_key"`
	BaseURL   string        `koanf:"base_url"`   // api.nasa.gov (APOD, Mars photos, NeoWs, Earth imagery)
	ImagesURL string        `koanf:"images_url"` // images-api.nasa.gov
	EPICURL   string        `koanf:"epic_url"`   // epic.gsfc.nasa.gov
	Timeout   time.Duration `koanf:"timeout"`    // Fixed per-call timeout
}

// UsingDemoKey reports whether the shared demo key is in use.
func (n *NASAConfig) UsingDemoKey() bool {
	return n.APIKey == "" || n.APIKey == DemoAPIKey
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `koanf:"port"`
	Host         string        `koanf:"host"`
	Timeout      time.Duration `koanf:"timeout"`
	PortFallback bool          `koanf:"port_fallback"` // On EADDRINUSE, try port+1
	Environment  string        `koanf:"environment"`
}

// SecurityConfig holds inbound request controls.
type SecurityConfig struct {
	CORSOrigins          []string      `koanf:"cors_origins"`
	CORSAllowCredentials bool          `koanf:"cors_allow_credentials"`
	RateLimitReqs        int           `koanf:"rate_limit_reqs"`
	RateLimitWindow      time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled    bool          `koanf:"rate_limit_disabled"` // true unless the operator opts in
}

// BreakerConfig holds circuit breaker settings for the upstream client.
type BreakerConfig struct {
	Enabled bool          `koanf:"enabled"`
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
