// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/skyport/internal/api"
	"github.com/tomtom215/skyport/internal/config"
	"github.com/tomtom215/skyport/internal/logging"
	"github.com/tomtom215/skyport/internal/metrics"
	"github.com/tomtom215/skyport/internal/nasa"
	"github.com/tomtom215/skyport/internal/supervisor"
	"github.com/tomtom215/skyport/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("nasa_base_url", cfg.NASA.BaseURL).
		Dur("upstream_timeout", cfg.NASA.Timeout).
		Bool("circuit_breaker", cfg.Breaker.Enabled).
		Msg("Starting Skyport")

	if cfg.NASA.UsingDemoKey() {
		logging.Warn().Msg("NASA_API_KEY not set, using DEMO_KEY (30 requests/hour, 50/day per IP)")
	}

	metrics.SetBuildInfo(version)

	provider := newProvider(cfg)

	handler := api.NewHandler(provider, cfg)
	handler.SetVersion(version)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromConfig(&cfg.Security))

	server := &http.Server{
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	listener := services.NewPortListener(cfg.Server.Host, cfg.Server.Port, cfg.Server.PortFallback)
	tree.AddAPIService(services.NewHTTPServerService(server, listener.Listen, shutdownTimeout))
	logging.Info().Str("addr", cfg.ListenAddr(cfg.Server.Port)).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Skyport stopped")
}

// newProvider builds the upstream client, wrapped in a circuit breaker when
// enabled.
func newProvider(cfg *config.Config) nasa.Provider {
	client := nasa.NewClient(&cfg.NASA)
	if !cfg.Breaker.Enabled {
		logging.Info().Msg("Upstream circuit breaker disabled")
		return client
	}

	settings := nasa.DefaultBreakerSettings()
	if cfg.Breaker.Timeout > 0 {
		settings.Timeout = cfg.Breaker.Timeout
	}
	return nasa.NewCircuitBreakerClient(client, settings)
}
