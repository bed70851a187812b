// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package api

import (
	"time"

	"github.com/tomtom215/skyport/internal/config"
	"github.com/tomtom215/skyport/internal/nasa"
)

// Handler serves the proxy and health endpoints.
type Handler struct {
	client    nasa.Provider
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a Handler. A nil client is allowed; proxy routes then
// answer 503 after validating their parameters.
func NewHandler(client nasa.Provider, cfg *config.Config) *Handler {
	return &Handler{
		client:    client,
		config:    cfg,
		startTime: time.Now(),
	}
}

// SetVersion sets the version reported by the health endpoint.
func (h *Handler) SetVersion(version string) {
	h.version = version
}
