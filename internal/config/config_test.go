// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.NASA.APIKey != DemoAPIKey {
		t.Errorf("NASA.APIKey = %q, want %q", cfg.NASA.APIKey, DemoAPIKey)
	}
	if cfg.NASA.BaseURL != "https://api.nasa.gov" {
		t.Errorf("NASA.BaseURL = %q", cfg.NASA.BaseURL)
	}
	if cfg.NASA.ImagesURL != "https://images-api.nasa.gov" {
		t.Errorf("NASA.ImagesURL = %q", cfg.NASA.ImagesURL)
	}
	if cfg.NASA.EPICURL != "https://epic.gsfc.nasa.gov" {
		t.Errorf("NASA.EPICURL = %q", cfg.NASA.EPICURL)
	}
	if cfg.NASA.Timeout != 15*time.Second {
		t.Errorf("NASA.Timeout = %v, want 15s", cfg.NASA.Timeout)
	}
	if cfg.Server.Port != 3333 {
		t.Errorf("Server.Port = %d, want 3333", cfg.Server.Port)
	}
	if !cfg.Server.PortFallback {
		t.Error("Server.PortFallback should be true by default")
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if !cfg.Security.CORSAllowCredentials {
		t.Error("Security.CORSAllowCredentials should be true by default")
	}
	if cfg.Security.RateLimitReqs != 100 || cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("inbound rate limiting should be off by default")
	}
	if !cfg.Breaker.Enabled || cfg.Breaker.Timeout != 2*time.Minute {
		t.Errorf("Breaker = %+v", cfg.Breaker)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"NASA_API_KEY", "nasa.api_key"},
		{"NASA_API_URL", "nasa.base_url"},
		{"UPSTREAM_TIMEOUT", "nasa.timeout"},
		{"PORT", "server.port"},
		{"HTTP_PORT", "server.port"},
		{"FRONTEND_URL", "security.cors_origins"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"CORS_CREDENTIALS", "security.cors_allow_credentials"},
		{"CIRCUIT_BREAKER_TIMEOUT", "breaker.timeout"},
		{"LOG_LEVEL", "logging.level"},
		{"HOME", ""},
		{"PATH", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skyport.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 4000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	if got := findConfigFile(); got == filepath.Join(dir, "missing.yaml") {
		t.Error("findConfigFile() should not return a missing CONFIG_PATH")
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("NASA_API_KEY", "my-real-key")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PORT", "8080")
	t.Setenv("UPSTREAM_TIMEOUT", "5s")
	t.Setenv("FRONTEND_URL", "https://app.example.com, https://beta.example.com")
	t.Setenv("DISABLE_RATE_LIMIT", "false")
	t.Setenv("CORS_CREDENTIALS", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.NASA.APIKey != "my-real-key" {
		t.Errorf("NASA.APIKey = %q", cfg.NASA.APIKey)
	}
	if cfg.NASA.UsingDemoKey() {
		t.Error("UsingDemoKey() should be false with an explicit key")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.NASA.Timeout != 5*time.Second {
		t.Errorf("NASA.Timeout = %v, want 5s", cfg.NASA.Timeout)
	}
	want := []string{"https://app.example.com", "https://beta.example.com"}
	if strings.Join(cfg.Security.CORSOrigins, ",") != strings.Join(want, ",") {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Security.RateLimitDisabled {
		t.Error("DISABLE_RATE_LIMIT=false should enable the limiter")
	}
	if cfg.Security.CORSAllowCredentials {
		t.Error("CORS_CREDENTIALS=false should disable credentials")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
nasa:
  api_key: file-key
  base_url: http://localhost:9000/
  timeout: 3s
breaker:
  enabled: false
security:
  cors_origins:
    - https://a.example.com
    - https://b.example.com
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("NASA_API_KEY", "env-key")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.NASA.APIKey != "env-key" {
		t.Errorf("env should override file: NASA.APIKey = %q", cfg.NASA.APIKey)
	}
	if cfg.NASA.BaseURL != "http://localhost:9000" {
		t.Errorf("NASA.BaseURL = %q, want trailing slash trimmed", cfg.NASA.BaseURL)
	}
	if cfg.NASA.Timeout != 3*time.Second {
		t.Errorf("NASA.Timeout = %v, want 3s", cfg.NASA.Timeout)
	}
	if cfg.Breaker.Enabled {
		t.Error("Breaker.Enabled should be false from file")
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want 2 entries", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanfEmptyAPIKeyFallsBackToDemo(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "none.yaml"))
	t.Setenv("NASA_API_KEY", "  ")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.NASA.APIKey != DemoAPIKey {
		t.Errorf("NASA.APIKey = %q, want %q", cfg.NASA.APIKey, DemoAPIKey)
	}
	if !cfg.NASA.UsingDemoKey() {
		t.Error("UsingDemoKey() should be true")
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad scheme", map[string]string{"NASA_API_URL": "ftp://api.nasa.gov"}, "NASA_API_URL scheme"},
		{"url with path", map[string]string{"NASA_EPIC_URL": "https://epic.gsfc.nasa.gov/api"}, "NASA_EPIC_URL should be base URL only"},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}, "LOG_LEVEL"},
		{"bad log format", map[string]string{"LOG_FORMAT": "xml"}, "LOG_FORMAT"},
		{"wildcard cors in production", map[string]string{"CORS_ORIGINS": "*", "FRONTEND_URL": "*", "ENVIRONMENT": "production"}, "CORS_ORIGINS"},
		{"rate limit window too small", map[string]string{"DISABLE_RATE_LIMIT": "false", "RATE_LIMIT_WINDOW": "10ms"}, "RATE_LIMIT_WINDOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "none.yaml"))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateHTTPURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://api.nasa.gov", false},
		{"http://127.0.0.1:8080/", false},
		{"", true},
		{"api.nasa.gov", true},
		{"https://", true},
		{"https://api.nasa.gov?x=1", true},
	}

	for _, tt := range tests {
		err := validateHTTPURL(tt.url, "NASA_API_URL")
		if (err != nil) != tt.wantErr {
			t.Errorf("validateHTTPURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestListenAddr(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if got := cfg.ListenAddr(3334); got != "0.0.0.0:3334" {
		t.Errorf("ListenAddr() = %q", got)
	}
}
