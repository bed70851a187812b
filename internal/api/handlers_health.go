// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/skyport/internal/models"
)

// circuitDisabled is reported when the provider is not behind a breaker.
const circuitDisabled = "disabled"

// circuitStater is implemented by providers that sit behind a circuit breaker.
type circuitStater interface {
	State() string
}

// Health reports service status, uptime and the upstream circuit state.
// It never calls the upstream.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	status := models.HealthStatus{
		Status:          models.HealthOK,
		Timestamp:       time.Now().UTC(),
		UptimeSeconds:   time.Since(h.startTime).Seconds(),
		Version:         h.version,
		DemoKey:         h.config != nil && h.config.NASA.UsingDemoKey(),
		UpstreamCircuit: circuitDisabled,
	}
	if cs, ok := h.client.(circuitStater); ok {
		status.UpstreamCircuit = cs.State()
	}

	writeJSON(w, http.StatusOK, status)
}

// HealthLive handles liveness probes.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": models.HealthOK,
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// NotFound answers unknown routes with the error envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "Not Found", nil)
}

// MethodNotAllowed answers known routes requested with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, models.ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
