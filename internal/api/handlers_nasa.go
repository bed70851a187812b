// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/skyport/internal/models"
	"github.com/tomtom215/skyport/internal/nasa"
)

// Client-facing messages for upstream failures.
const (
	msgAPODFailed         = "Failed to fetch APOD data"
	msgMarsPhotosFailed   = "Failed to fetch Mars photos"
	msgNEOFailed          = "Failed to fetch NEO data"
	msgImageSearchFailed  = "Failed to search images"
	msgEPICFailed         = "Failed to fetch EPIC images"
	msgEarthImageryFailed = "Failed to fetch Earth imagery"
)

// APOD returns the Astronomy Picture of the Day for ?date, or today when
// date is omitted.
func (h *Handler) APOD(w http.ResponseWriter, r *http.Request) {
	proxyUpstreamRequest(h, w, r, UpstreamProxyConfig[models.APODParams]{
		Endpoint:    nasa.EndpointAPOD,
		ParseParams: parseAPODParams,
		CallClient: func(ctx context.Context, c nasa.Provider, p *models.APODParams) (*nasa.Payload, error) {
			return c.APOD(ctx, p)
		},
		ErrorMessage: msgAPODFailed,
	})
}

// APODRange returns every APOD entry between start_date and end_date.
func (h *Handler) APODRange(w http.ResponseWriter, r *http.Request) {
	proxyUpstreamRequest(h, w, r, UpstreamProxyConfig[models.APODRangeParams]{
		Endpoint:    nasa.EndpointAPODRange,
		ParseParams: parseAPODRangeParams,
		CallClient: func(ctx context.Context, c nasa.Provider, p *models.APODRangeParams) (*nasa.Payload, error) {
			return c.APODRange(ctx, p)
		},
		ErrorMessage: msgAPODFailed,
	})
}

// MarsPhotos handles /mars-photos?rover=...&sol=...
func (h *Handler) MarsPhotos(w http.ResponseWriter, r *http.Request) {
	h.marsPhotos(w, r, parseMarsPhotosQueryParams)
}

// MarsPhotosByRover handles /mars-photos/{rover}?sol=...
func (h *Handler) MarsPhotosByRover(w http.ResponseWriter, r *http.Request) {
	h.marsPhotos(w, r, parseMarsPhotosPathParams)
}

func (h *Handler) marsPhotos(w http.ResponseWriter, r *http.Request, parse func(*http.Request) *models.MarsPhotosParams) {
	proxyUpstreamRequest(h, w, r, UpstreamProxyConfig[models.MarsPhotosParams]{
		Endpoint:    nasa.EndpointMarsPhotos,
		ParseParams: parse,
		CallClient: func(ctx context.Context, c nasa.Provider, p *models.MarsPhotosParams) (*nasa.Payload, error) {
			return c.MarsPhotos(ctx, p)
		},
		ErrorMessage: msgMarsPhotosFailed,
	})
}

// NEOFeed returns near-Earth objects approaching between start_date and end_date.
func (h *Handler) NEOFeed(w http.ResponseWriter, r *http.Request) {
	proxyUpstreamRequest(h, w, r, UpstreamProxyConfig[models.NEOFeedParams]{
		Endpoint:    nasa.EndpointNEOFeed,
		ParseParams: parseNEOFeedParams,
		CallClient: func(ctx context.Context, c nasa.Provider, p *models.NEOFeedParams) (*nasa.Payload, error) {
			return c.NEOFeed(ctx, p)
		},
		ErrorMessage: msgNEOFailed,
	})
}

// SearchImages searches the NASA Image and Video Library for images.
func (h *Handler) SearchImages(w http.ResponseWriter, r *http.Request) {
	proxyUpstreamRequest(h, w, r, UpstreamProxyConfig[models.ImageSearchParams]{
		Endpoint:    nasa.EndpointImageSearch,
		ParseParams: parseImageSearchParams,
		CallClient: func(ctx context.Context, c nasa.Provider, p *models.ImageSearchParams) (*nasa.Payload, error) {
			return c.SearchImages(ctx, p)
		},
		ErrorMessage: msgImageSearchFailed,
	})
}

// EPIC returns the most recent natural-color EPIC image metadata.
func (h *Handler) EPIC(w http.ResponseWriter, r *http.Request) {
	proxyUpstreamRequest(h, w, r, UpstreamProxyConfig[models.EPICParams]{
		Endpoint:    nasa.EndpointEPIC,
		ParseParams: parseEPICParams,
		CallClient: func(ctx context.Context, c nasa.Provider, p *models.EPICParams) (*nasa.Payload, error) {
			return c.EPIC(ctx, p)
		},
		ErrorMessage: msgEPICFailed,
	})
}

// EarthImagery returns a Landsat image for lat, lon and date. The upstream
// answers with a PNG, which is relayed as-is.
func (h *Handler) EarthImagery(w http.ResponseWriter, r *http.Request) {
	proxyUpstreamRequest(h, w, r, UpstreamProxyConfig[models.EarthImageryParams]{
		Endpoint:    nasa.EndpointEarthImagery,
		ParseParams: parseEarthImageryParams,
		CallClient: func(ctx context.Context, c nasa.Provider, p *models.EarthImageryParams) (*nasa.Payload, error) {
			return c.EarthImagery(ctx, p)
		},
		ErrorMessage: msgEarthImageryFailed,
	})
}
