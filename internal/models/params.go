// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package models

// Rover names accepted by the Mars rover photos API.
const (
	RoverCuriosity    = "curiosity"
	RoverOpportunity  = "opportunity"
	RoverSpirit       = "spirit"
	RoverPerseverance = "perseverance"
)

// DefaultRover is used when the query form of the Mars photos route omits rover.
const DefaultRover = RoverCuriosity

// DefaultSol is used when sol is missing, zero, or has no leading integer.
const DefaultSol = 1000

// APODParams selects a single Astronomy Picture of the Day.
// An empty Date lets the upstream resolve "today" in its own timezone.
// Date is forwarded as given; the upstream rejects malformed values.
type APODParams struct {
	Date string `query:"date"`
}

// APODRangeParams selects every APOD between two dates inclusive.
type APODRangeParams struct {
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
}

// MarsPhotosParams selects rover photos by martian sol or by Earth date.
// When EarthDate is set it is forwarded instead of Sol. Rover and EarthDate
// are not checked against the upstream's vocabulary.
type MarsPhotosParams struct {
	Rover     string `query:"rover" validate:"required"`
	Sol       int    `query:"sol"`
	EarthDate string `query:"earth_date"`
}

// NEOFeedParams selects near-earth objects by closest approach date.
type NEOFeedParams struct {
	StartDate string `query:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"required,datetime=2006-01-02"`
}

// ImageSearchParams is a free-text query against the image library.
type ImageSearchParams struct {
	Query string `query:"q" validate:"required"`
}

// EPICParams has no inputs; the upstream returns the latest natural-color set.
type EPICParams struct{}

// EarthImageryParams selects a Landsat tile for a coordinate and date.
// Lat and Lon are kept as the client sent them and forwarded verbatim.
type EarthImageryParams struct {
	Lat  string `query:"lat" validate:"required,latitude"`
	Lon  string `query:"lon" validate:"required,longitude"`
	Date string `query:"date" validate:"required,datetime=2006-01-02"`
}
