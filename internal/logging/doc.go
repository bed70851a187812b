// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

// Package logging provides the zerolog-based structured logger used by every
// Skyport component.
//
// # Overview
//
// The package exposes a process-wide logger configured once at startup:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//
// Handlers and the upstream client log through the request context so that
// request_id and correlation_id are attached automatically:
//
//	logging.Ctx(r.Context()).Error().Err(err).Msg("Upstream call failed")
//
// # Secrets
//
// Upstream URLs carry the provider API key as a query parameter. Anything that
// logs a URL must pass it through RedactURL first; RedactSecrets scrubs the
// same keys out of free-form error strings.
//
// # Configuration
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// # slog Bridge
//
// The suture supervisor reports lifecycle events through log/slog. NewSlogLogger
// returns an *slog.Logger whose records are written by zerolog, keeping a single
// output format for the whole process.
package logging
