// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

/*
Package config provides centralized configuration management for Skyport.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Defaults: built-in values from defaultConfig()
 2. Config file: optional YAML file (CONFIG_PATH, config.yaml, /etc/skyport/config.yaml)
 3. Environment variables: explicit mapping table in envTransformFunc

# Environment Variables

Upstream (NASAConfig):
  - NASA_API_KEY: api.nasa.gov key (default: DEMO_KEY, heavily rate limited)
  - NASA_API_URL: Base URL for api.nasa.gov endpoints (default: https://api.nasa.gov)
  - NASA_IMAGES_URL: Image and video library (default: https://images-api.nasa.gov)
  - NASA_EPIC_URL: EPIC archive (default: https://epic.gsfc.nasa.gov)
  - UPSTREAM_TIMEOUT: Per-call timeout (default: 15s)

HTTP Server (ServerConfig):
  - PORT / HTTP_PORT: Listen port (default: 3333)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - PORT_FALLBACK: Try the next port when the configured one is in use (default: true)
  - ENVIRONMENT: development or production (default: development)

Security (SecurityConfig):
  - FRONTEND_URL / CORS_ORIGINS: Comma-separated allowed origins (default: http://localhost:5173)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 100)
  - RATE_LIMIT_WINDOW: Window duration (default: 1m)
  - CORS_CREDENTIALS: Allow credentialed cross-origin requests (default: true)
  - DISABLE_RATE_LIMIT: Disable inbound rate limiting (default: true; set false to enable)

Circuit Breaker (BreakerConfig):
  - CIRCUIT_BREAKER_ENABLED: Wrap the upstream client in a breaker (default: true)
  - CIRCUIT_BREAKER_TIMEOUT: Open state duration before half-open (default: 2m)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	if cfg.NASA.UsingDemoKey() {
	    logging.Warn().Msg("NASA_API_KEY not set, using DEMO_KEY")
	}

# Thread Safety

Config values are immutable after Load and safe for concurrent reads.
*/
package config
