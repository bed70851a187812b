// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

/*
Package api provides the HTTP layer of Skyport.

Every proxy route validates its query parameters, makes exactly one call to
the NASA upstream through a nasa.Provider and relays the upstream body
unchanged. Failures are reported with the standard JSON envelope:

	{
	  "status": "error",
	  "data": null,
	  "metadata": {"timestamp": "...", "request_id": "..."},
	  "error": {"code": "VALIDATION_ERROR", "message": "q is required"}
	}

Routes are mounted under both /api and /api/nasa:

  - GET /apod[?date]
  - GET /apod/range?start_date&end_date
  - GET /mars-photos?rover&sol|earth_date
  - GET /mars-photos/{rover}?sol|earth_date
  - GET /neo?start_date&end_date
  - GET /search-images?q (alias /search)
  - GET /epic
  - GET /earth-imagery?lat&lon&date

Health endpoints live at /api/health and /api/health/live, and Prometheus
metrics at /metrics.

Error codes:

  - VALIDATION_ERROR (400): missing required parameter, or a malformed
    value of one (dates, lat, lon)
  - NOT_FOUND (404): unknown route
  - METHOD_NOT_ALLOWED (405)
  - RATE_LIMIT_EXCEEDED (429): only when DISABLE_RATE_LIMIT=false
  - UPSTREAM_ERROR (500): upstream call failed; message is generic
  - INTERNAL_ERROR (500): a handler panicked
  - SERVICE_ERROR (503): no upstream client configured

Upstream error details are only written to the log, with API keys redacted.
*/
package api
