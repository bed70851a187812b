// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/tomtom215/skyport/internal/config"
	"github.com/tomtom215/skyport/internal/models"
	"github.com/tomtom215/skyport/internal/nasa"
)

// mockProvider records the parameters of every call and answers with a
// fixed payload or error.
type mockProvider struct {
	mu      sync.Mutex
	payload *nasa.Payload
	err     error
	calls   []string
	last    interface{}
}

func newMockProvider(body string) *mockProvider {
	return &mockProvider{
		payload: &nasa.Payload{Body: []byte(body), ContentType: "application/json"},
	}
}

func (m *mockProvider) record(op string, params interface{}) (*nasa.Payload, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, op)
	m.last = params
	if m.err != nil {
		return nil, m.err
	}
	return m.payload, nil
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockProvider) lastParams() interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) APOD(_ context.Context, p *models.APODParams) (*nasa.Payload, error) {
	return m.record("apod", p)
}

func (m *mockProvider) APODRange(_ context.Context, p *models.APODRangeParams) (*nasa.Payload, error) {
	return m.record("apod_range", p)
}

func (m *mockProvider) MarsPhotos(_ context.Context, p *models.MarsPhotosParams) (*nasa.Payload, error) {
	return m.record("mars_photos", p)
}

func (m *mockProvider) NEOFeed(_ context.Context, p *models.NEOFeedParams) (*nasa.Payload, error) {
	return m.record("neo_feed", p)
}

func (m *mockProvider) SearchImages(_ context.Context, p *models.ImageSearchParams) (*nasa.Payload, error) {
	return m.record("image_search", p)
}

func (m *mockProvider) EPIC(_ context.Context, p *models.EPICParams) (*nasa.Payload, error) {
	return m.record("epic", p)
}

func (m *mockProvider) EarthImagery(_ context.Context, p *models.EarthImageryParams) (*nasa.Payload, error) {
	return m.record("earth_imagery", p)
}

// testConfig returns a config using the demo key and no rate limiting.
func testConfig() *config.Config {
	return &config.Config{
		NASA: config.NASAConfig{APIKey: config.DemoAPIKey},
		Security: config.SecurityConfig{
			CORSOrigins:          []string{"http://localhost:5173"},
			CORSAllowCredentials: true,
			RateLimitDisabled:    true,
		},
	}
}

// newTestRouter builds the full chi handler around provider.
func newTestRouter(t *testing.T, provider nasa.Provider, cfg *config.Config) http.Handler {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	handler := NewHandler(provider, cfg)
	return NewRouter(handler, ChiMiddlewareConfigFromConfig(&cfg.Security)).SetupChi()
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
