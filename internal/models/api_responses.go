// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package models

import (
	"time"
)

// APIResponse is the envelope used for errors and service endpoints.
// Successful proxy responses bypass it and carry the raw upstream JSON.
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z"},
//	  "error": {"code": "VALIDATION_ERROR", "message": "q is required"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: missing or malformed query parameter (400)
//   - NOT_FOUND: unknown route (404)
//   - METHOD_NOT_ALLOWED: route exists for another method (405)
//   - RATE_LIMIT_EXCEEDED: inbound rate limit hit (429)
//   - UPSTREAM_ERROR: the upstream call failed (500)
//   - INTERNAL_ERROR: unexpected server failure (500)
//   - SERVICE_ERROR: upstream client not configured (503)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeRateLimit        = "RATE_LIMIT_EXCEEDED"
	ErrCodeUpstream         = "UPSTREAM_ERROR"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeService          = "SERVICE_ERROR"
)
