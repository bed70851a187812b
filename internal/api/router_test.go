// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tomtom215/skyport/internal/config"
	"github.com/tomtom215/skyport/internal/middleware"
	"github.com/tomtom215/skyport/internal/models"
	"github.com/tomtom215/skyport/internal/nasa"
)

func TestRouter_NotFound(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, newMockProvider(`{}`), nil)

	for _, target := range []string{"/nope", "/api/unknown", "/api/nasa/unknown"} {
		rec := doGet(t, h, target)
		if rec.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", target, rec.Code)
			continue
		}
		resp := decodeEnvelope(t, rec.Body.Bytes())
		if resp.Error == nil || resp.Error.Code != models.ErrCodeNotFound || resp.Error.Message != "Not Found" {
			t.Errorf("%s: error = %+v", target, resp.Error)
		}
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	provider := newMockProvider(`{}`)
	h := newTestRouter(t, provider, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/apod", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if provider.callCount() != 0 {
		t.Error("upstream called for POST")
	}
}

func TestRouter_RequestIDPropagation(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, newMockProvider(`{}`), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/search-images", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied-id")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "client-supplied-id" {
		t.Errorf("X-Request-ID = %q", got)
	}
	resp := decodeEnvelope(t, rec.Body.Bytes())
	if resp.Metadata.RequestID != "client-supplied-id" {
		t.Errorf("metadata.request_id = %q", resp.Metadata.RequestID)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, newMockProvider(`{}`), nil)

	rec := doGet(t, h, "/api/epic")
	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for name, want := range headers {
		if got := rec.Header().Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on plain HTTP request")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/epic", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("HSTS missing behind TLS proxy")
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, newMockProvider(`{}`), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/apod", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/apod", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("unexpected Access-Control-Allow-Origin %q for foreign origin", got)
	}
}

func TestRouter_CORSCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		credentials bool
		want        string
	}{
		{"allowed", true, "true"},
		{"not allowed", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig()
			cfg.Security.CORSAllowCredentials = tt.credentials
			h := newTestRouter(t, newMockProvider(`{}`), cfg)

			req := httptest.NewRequest(http.MethodOptions, "/api/nasa/apod", nil)
			req.Header.Set("Origin", "http://localhost:5173")
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != tt.want {
				t.Errorf("Access-Control-Allow-Credentials = %q, want %q", got, tt.want)
			}
		})
	}
}

// rejectedRequests sums api_requests_total series with status_code 429.
func rejectedRequests(t *testing.T) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != "api_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "status_code" && label.GetValue() == "429" {
					total += m.GetCounter().GetValue()
				}
			}
		}
	}
	return total
}

// Not parallel: counts 429s in the shared Prometheus registry.
func TestRouter_RateLimit(t *testing.T) {
	before := rejectedRequests(t)

	cfg := testConfig()
	cfg.Security.RateLimitDisabled = false
	cfg.Security.RateLimitReqs = 2
	cfg.Security.RateLimitWindow = time.Minute

	provider := newMockProvider(`{}`)
	h := newTestRouter(t, provider, cfg)

	// Both mounts share one budget.
	targets := []string{"/api/epic", "/api/nasa/epic", "/api/epic"}
	var last *httptest.ResponseRecorder
	for _, target := range targets {
		last = doGet(t, h, target)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", last.Code)
	}
	resp := decodeEnvelope(t, last.Body.Bytes())
	if resp.Error == nil || resp.Error.Code != models.ErrCodeRateLimit {
		t.Errorf("error = %+v", resp.Error)
	}
	if provider.callCount() != 2 {
		t.Errorf("upstream calls = %d, want 2", provider.callCount())
	}
	if got := rejectedRequests(t) - before; got != 1 {
		t.Errorf("api_requests_total{status_code=429} grew by %v, want 1", got)
	}

	// Health is outside the limiter.
	if rec := doGet(t, h, "/api/health"); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestRouter_DefaultConfigHasNoRateLimit(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	provider := newMockProvider(`[]`)
	h := newTestRouter(t, provider, cfg)

	const requests = 120
	for i := 0; i < requests; i++ {
		if rec := doGet(t, h, "/api/epic"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, rec.Code)
		}
	}
	if provider.callCount() != requests {
		t.Errorf("upstream calls = %d, want %d", provider.callCount(), requests)
	}
}

func TestRecoverer(t *testing.T) {
	t.Parallel()

	r := chi.NewRouter()
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(Recoverer)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	r.Get("/abort", func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) })

	t.Run("panic becomes internal error envelope", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		req.Header.Set(middleware.RequestIDHeader, "panic-req")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		resp := decodeEnvelope(t, rec.Body.Bytes())
		if resp.Error == nil || resp.Error.Code != models.ErrCodeInternal {
			t.Errorf("error = %+v, want %s", resp.Error, models.ErrCodeInternal)
		}
		if resp.Metadata.RequestID != "panic-req" {
			t.Errorf("request_id = %q, want panic-req", resp.Metadata.RequestID)
		}
	})

	t.Run("abort handler is re-raised", func(t *testing.T) {
		t.Parallel()

		defer func() {
			rec := recover()
			err, ok := rec.(error)
			if !ok || !errors.Is(err, http.ErrAbortHandler) {
				t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
			}
		}()
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/abort", nil))
	})
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, newMockProvider(`{}`), nil)

	rec := doGet(t, h, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var status models.HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Status != models.HealthOK {
		t.Errorf("status = %q, want OK", status.Status)
	}
	if status.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if !status.DemoKey {
		t.Error("demo_key = false with DEMO_KEY configured")
	}
	if status.UpstreamCircuit != circuitDisabled {
		t.Errorf("upstream_circuit = %q, want %q", status.UpstreamCircuit, circuitDisabled)
	}

	if rec := doGet(t, h, "/api/health/live"); rec.Code != http.StatusOK {
		t.Errorf("live status = %d", rec.Code)
	}
}

func TestRouter_HealthReportsCircuitState(t *testing.T) {
	t.Parallel()

	settings := nasa.DefaultBreakerSettings()
	settings.Name = "api-health-test"
	breaker := nasa.NewCircuitBreakerClient(newMockProvider(`{}`), settings)

	cfg := testConfig()
	cfg.NASA.APIKey = "real-key"

	rec := doGet(t, newTestRouter(t, breaker, cfg), "/api/health")

	var status models.HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.UpstreamCircuit != "closed" {
		t.Errorf("upstream_circuit = %q, want closed", status.UpstreamCircuit)
	}
	if status.DemoKey {
		t.Error("demo_key = true with a real key")
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, newMockProvider(`{}`), nil)
	doGet(t, h, "/api/epic")

	rec := doGet(t, h, "/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("exposition missing api_requests_total")
	}
}
