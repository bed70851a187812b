// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package models

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestAPIResponse_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	resp := APIResponse{
		Status:   "error",
		Metadata: Metadata{Timestamp: time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)},
		Error:    &APIError{Code: ErrCodeValidation, Message: "q is required"},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got := string(data)
	for _, want := range []string{
		`"status":"error"`,
		`"data":null`,
		`"timestamp":"2026-01-02T12:00:00Z"`,
		`"code":"VALIDATION_ERROR"`,
		`"message":"q is required"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("envelope missing %s: %s", want, got)
		}
	}
	if strings.Contains(got, "details") {
		t.Errorf("empty details should be omitted: %s", got)
	}
	if strings.Contains(got, "request_id") {
		t.Errorf("empty request_id should be omitted: %s", got)
	}
}

func TestAPIResponse_SuccessOmitsError(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(APIResponse{Status: "success", Data: map[string]int{"n": 1}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if strings.Contains(string(data), `"error"`) {
		t.Errorf("success envelope should omit error: %s", data)
	}
}

func TestHealthStatus_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(HealthStatus{Status: HealthOK, DemoKey: true, UpstreamCircuit: "closed"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	got := string(data)
	for _, want := range []string{`"status":"OK"`, `"demo_key":true`, `"upstream_circuit":"closed"`, `"uptime_seconds":0`} {
		if !strings.Contains(got, want) {
			t.Errorf("health body missing %s: %s", want, got)
		}
	}
}
