// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

/*
Package metrics provides Prometheus metrics for the proxy.

Collectors are registered on the default registry via promauto and exposed at
GET /metrics by the API router:

	curl http://localhost:3333/metrics

# Available Metrics

Inbound API:
  - api_requests_total{method,endpoint,status_code}: counter
  - api_request_duration_seconds{method,endpoint}: histogram
  - api_active_requests: gauge
  - api_rate_limit_hits_total{endpoint}: counter

Upstream calls:
  - upstream_requests_total{endpoint,outcome}: counter, outcome is
    success, http_error, transport_error or invalid_payload
  - upstream_request_duration_seconds{endpoint}: histogram
  - upstream_response_bytes{endpoint}: histogram

Circuit breaker:
  - circuit_breaker_state{name}: gauge (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name,result}: counter
  - circuit_breaker_consecutive_failures{name}: gauge
  - circuit_breaker_state_transitions_total{name,from_state,to_state}: counter

Process:
  - skyport_build_info{version}: constant 1

The endpoint label always carries the chi route pattern, never the raw path,
so label cardinality stays bounded.
*/
package metrics
