// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

/*
Package middleware provides HTTP middleware components for the proxy.

Key Components:

  - RequestID: X-Request-ID propagation with logging context integration
  - AccessLog: one structured zerolog line per completed request
  - PrometheusMetrics: request/response instrumentation

All three use the http.HandlerFunc middleware shape. The API router adapts
them to chi with its chiMiddleware helper:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
*/
package middleware
