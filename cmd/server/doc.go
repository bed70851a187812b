// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

/*
Package main is the entry point for the Skyport server.

Skyport is a thin HTTP proxy in front of several NASA public data APIs
(APOD, Mars Rover Photos, NeoWs, the Image and Video Library, EPIC and
Earth imagery). It keeps the NASA API key on the server, validates query
parameters and relays upstream responses unchanged.

# Application Architecture

	RootSupervisor ("skyport")
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. Configuration: koanf v2 with defaults, optional config.yaml and environment
 2. Logging: zerolog with JSON or console output
 3. Upstream client: NASA HTTP client, optionally behind a circuit breaker
 4. Router: chi with request ID, access log, CORS, optional rate limit and metrics
 5. Supervisor tree: suture v4

# Configuration

	Priority: Environment variables > Config file > Defaults

	NASA_API_KEY=<key>           # defaults to DEMO_KEY (rate limited, warns at startup)
	PORT=3333                    # HTTP port; PORT_FALLBACK=true tries 3334 if taken
	FRONTEND_URL=http://localhost:5173
	DISABLE_RATE_LIMIT=true      # set false to enable the per-IP limiter below
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m
	CIRCUIT_BREAKER_ENABLED=true
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and waits up to ten seconds for in-flight requests.

# Example

	export NASA_API_KEY=your-key
	./skyport
	curl 'http://localhost:3333/api/neo?start_date=2024-01-01&end_date=2024-01-02'
*/
package main
