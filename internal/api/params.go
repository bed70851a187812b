// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/skyport/internal/models"
)

// queryParam returns a trimmed query parameter.
func queryParam(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// solParam reads the leading integer of sol ("12abc" is 12, "1.5" is 1).
// A missing value, one with no leading digits, or zero gives
// models.DefaultSol. Negative values are forwarded for the upstream to judge.
func solParam(r *http.Request) int {
	raw := queryParam(r, "sol")

	end := 0
	if end < len(raw) && (raw[end] == '+' || raw[end] == '-') {
		end++
	}
	digits := end
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == digits {
		return models.DefaultSol
	}

	sol, err := strconv.Atoi(raw[:end])
	if err != nil || sol == 0 {
		return models.DefaultSol
	}
	return sol
}

func parseAPODParams(r *http.Request) *models.APODParams {
	return &models.APODParams{Date: queryParam(r, "date")}
}

func parseAPODRangeParams(r *http.Request) *models.APODRangeParams {
	return &models.APODRangeParams{
		StartDate: queryParam(r, "start_date"),
		EndDate:   queryParam(r, "end_date"),
	}
}

// parseMarsPhotosQueryParams handles /mars-photos?rover=..., where rover
// defaults to curiosity.
func parseMarsPhotosQueryParams(r *http.Request) *models.MarsPhotosParams {
	rover := strings.ToLower(queryParam(r, "rover"))
	if rover == "" {
		rover = models.DefaultRover
	}
	return &models.MarsPhotosParams{
		Rover:     rover,
		Sol:       solParam(r),
		EarthDate: queryParam(r, "earth_date"),
	}
}

// parseMarsPhotosPathParams handles /mars-photos/{rover}.
func parseMarsPhotosPathParams(r *http.Request) *models.MarsPhotosParams {
	return &models.MarsPhotosParams{
		Rover:     strings.ToLower(strings.TrimSpace(chi.URLParam(r, "rover"))),
		Sol:       solParam(r),
		EarthDate: queryParam(r, "earth_date"),
	}
}

func parseNEOFeedParams(r *http.Request) *models.NEOFeedParams {
	return &models.NEOFeedParams{
		StartDate: queryParam(r, "start_date"),
		EndDate:   queryParam(r, "end_date"),
	}
}

func parseImageSearchParams(r *http.Request) *models.ImageSearchParams {
	return &models.ImageSearchParams{Query: queryParam(r, "q")}
}

func parseEPICParams(*http.Request) *models.EPICParams {
	return &models.EPICParams{}
}

func parseEarthImageryParams(r *http.Request) *models.EarthImageryParams {
	return &models.EarthImageryParams{
		Lat:  queryParam(r, "lat"),
		Lon:  queryParam(r, "lon"),
		Date: queryParam(r, "date"),
	}
}
