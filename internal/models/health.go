// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package models

import "time"

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
	UptimeSeconds   float64   `json:"uptime_seconds"`
	Version         string    `json:"version,omitempty"`
	DemoKey         bool      `json:"demo_key"`
	UpstreamCircuit string    `json:"upstream_circuit"`
}

// HealthOK is the Status value of a healthy service.
const HealthOK = "OK"
