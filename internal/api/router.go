// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/skyport/internal/middleware"
)

// ProxyMounts are the prefixes the proxy routes are served under.
var ProxyMounts = []string{"/api", "/api/nasa"}

// compressionLevel is the gzip level for JSON responses.
const compressionLevel = 5

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. A nil mwCfg uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mwCfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwCfg),
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to all routes, in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chiMiddleware(middleware.AccessLog))
	r.Use(Recoverer)
	r.Use(chimiddleware.Compress(compressionLevel, "application/json"))
	r.Use(router.chiMiddleware.CORS()) // global so OPTIONS preflight is answered

	r.NotFound(router.handler.NotFound)
	r.MethodNotAllowed(router.handler.MethodNotAllowed)

	r.Route("/api/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
	})

	// One limiter shared by every mount, so /api and /api/nasa draw from
	// the same per-IP budget.
	rateLimit := router.chiMiddleware.RateLimit()
	for _, prefix := range ProxyMounts {
		r.Route(prefix, func(r chi.Router) {
			// Metrics first so rejected requests are still counted.
			r.Use(chiMiddleware(middleware.PrometheusMetrics))
			r.Use(rateLimit)
			r.Use(APISecurityHeaders())
			router.proxyRoutes(r)
		})
	}

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// proxyRoutes registers the upstream proxy endpoints on r.
func (router *Router) proxyRoutes(r chi.Router) {
	h := router.handler

	r.Get("/apod", h.APOD)
	r.Get("/apod/range", h.APODRange)
	r.Get("/mars-photos", h.MarsPhotos)
	r.Get("/mars-photos/{rover}", h.MarsPhotosByRover)
	r.Get("/neo", h.NEOFeed)
	r.Get("/search-images", h.SearchImages)
	r.Get("/search", h.SearchImages)
	r.Get("/epic", h.EPIC)
	r.Get("/earth-imagery", h.EarthImagery)
}
