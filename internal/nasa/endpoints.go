// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package nasa

import (
	"context"
	"net/url"

	"github.com/tomtom215/skyport/internal/models"
)

// APOD fetches one Astronomy Picture of the Day. Without a date the upstream
// picks today in its own timezone.
func (c *Client) APOD(ctx context.Context, p *models.APODParams) (*Payload, error) {
	req := c.keyed(EndpointAPOD, "/planetary/apod").
		addParam("date", p.Date)
	return c.do(ctx, req)
}

// APODRange fetches every APOD between StartDate and EndDate.
func (c *Client) APODRange(ctx context.Context, p *models.APODRangeParams) (*Payload, error) {
	req := c.keyed(EndpointAPODRange, "/planetary/apod").
		addParam("start_date", p.StartDate).
		addParam("end_date", p.EndDate)
	return c.do(ctx, req)
}

// MarsPhotos fetches rover photos. EarthDate, when set, replaces Sol.
func (c *Client) MarsPhotos(ctx context.Context, p *models.MarsPhotosParams) (*Payload, error) {
	req := c.keyed(EndpointMarsPhotos, "/mars-photos/api/v1/rovers/"+url.PathEscape(p.Rover)+"/photos")
	if p.EarthDate != "" {
		req.addParam("earth_date", p.EarthDate)
	} else {
		req.addIntParam("sol", p.Sol)
	}
	return c.do(ctx, req)
}

// NEOFeed fetches near-earth objects by closest approach date.
func (c *Client) NEOFeed(ctx context.Context, p *models.NEOFeedParams) (*Payload, error) {
	req := c.keyed(EndpointNEOFeed, "/neo/rest/v1/feed").
		addParam("start_date", p.StartDate).
		addParam("end_date", p.EndDate)
	return c.do(ctx, req)
}

// SearchImages queries the image library, restricted to still images.
func (c *Client) SearchImages(ctx context.Context, p *models.ImageSearchParams) (*Payload, error) {
	req := newAPIRequest(EndpointImageSearch, c.imagesURL, "/search").
		addParam("q", p.Query).
		addParam("media_type", "image")
	return c.do(ctx, req)
}

// EPIC fetches metadata for the most recent natural-color EPIC images.
func (c *Client) EPIC(ctx context.Context, _ *models.EPICParams) (*Payload, error) {
	return c.do(ctx, newAPIRequest(EndpointEPIC, c.epicURL, "/api/natural"))
}

// EarthImagery fetches the Landsat tile closest to the date for a coordinate.
func (c *Client) EarthImagery(ctx context.Context, p *models.EarthImageryParams) (*Payload, error) {
	req := c.keyed(EndpointEarthImagery, "/planetary/earth/imagery").
		addParam("lat", p.Lat).
		addParam("lon", p.Lon).
		addParam("date", p.Date)
	return c.do(ctx, req)
}
