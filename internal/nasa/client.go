// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package nasa

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/skyport/internal/config"
	"github.com/tomtom215/skyport/internal/logging"
	"github.com/tomtom215/skyport/internal/metrics"
	"github.com/tomtom215/skyport/internal/models"
)

const userAgent = "skyport/1.0 (+https://github.com/tomtom215/skyport)"

// Endpoint names used in logs and metric labels.
const (
	EndpointAPOD         = "apod"
	EndpointAPODRange    = "apod_range"
	EndpointMarsPhotos   = "mars_photos"
	EndpointNEOFeed      = "neo_feed"
	EndpointImageSearch  = "image_search"
	EndpointEPIC         = "epic"
	EndpointEarthImagery = "earth_imagery"
)

// Provider is the set of upstream operations the API layer proxies.
//
// Implemented by Client for production and wrapped by CircuitBreakerClient.
// Tests in the api package supply their own implementation.
type Provider interface {
	Name() string
	APOD(ctx context.Context, p *models.APODParams) (*Payload, error)
	APODRange(ctx context.Context, p *models.APODRangeParams) (*Payload, error)
	MarsPhotos(ctx context.Context, p *models.MarsPhotosParams) (*Payload, error)
	NEOFeed(ctx context.Context, p *models.NEOFeedParams) (*Payload, error)
	SearchImages(ctx context.Context, p *models.ImageSearchParams) (*Payload, error)
	EPIC(ctx context.Context, p *models.EPICParams) (*Payload, error)
	EarthImagery(ctx context.Context, p *models.EarthImageryParams) (*Payload, error)
}

// Client talks to the NASA APIs over HTTP.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	imagesURL  string
	epicURL    string
	logger     zerolog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg *config.NASAConfig) *Client {
	return NewClientWithHTTP(cfg, &http.Client{Timeout: cfg.Timeout})
}

// NewClientWithHTTP creates a Client that uses the given http.Client.
func NewClientWithHTTP(cfg *config.NASAConfig, httpClient *http.Client) *Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = config.DemoAPIKey
	}
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		baseURL:    cfg.BaseURL,
		imagesURL:  cfg.ImagesURL,
		epicURL:    cfg.EPICURL,
		logger:     logging.WithComponent("nasa"),
	}
}

// Name identifies the provider in logs and health output.
func (c *Client) Name() string {
	return "nasa"
}

// keyed returns a request against api.nasa.gov carrying the API key.
func (c *Client) keyed(endpoint, path string) *apiRequest {
	return newAPIRequest(endpoint, c.baseURL, path).addParam("api_key", c.apiKey)
}

// do executes req and records the outcome.
func (c *Client) do(ctx context.Context, req *apiRequest) (*Payload, error) {
	start := time.Now()
	payload, err := executeRequest(ctx, c.httpClient, req)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordUpstreamCall(req.endpoint, outcomeFor(err), duration, 0)
		c.logger.Debug().
			Str("endpoint", req.endpoint).
			Str("url", logging.RedactURL(req.buildURL())).
			Dur("duration", duration).
			Err(err).
			Msg("Upstream call failed")
		return nil, err
	}

	metrics.RecordUpstreamCall(req.endpoint, metrics.OutcomeSuccess, duration, len(payload.Body))
	c.logger.Debug().
		Str("endpoint", req.endpoint).
		Str("url", logging.RedactURL(req.buildURL())).
		Int("bytes", len(payload.Body)).
		Dur("duration", duration).
		Msg("Upstream call completed")

	return payload, nil
}

func outcomeFor(err error) string {
	var upErr *UpstreamError
	switch {
	case errors.As(err, &upErr):
		return metrics.OutcomeHTTPError
	case errors.Is(err, ErrInvalidPayload), errors.Is(err, ErrPayloadTooLarge):
		return metrics.OutcomeInvalidPayload
	default:
		return metrics.OutcomeTransportError
	}
}
