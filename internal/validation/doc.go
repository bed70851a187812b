// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

/*
Package validation provides struct validation using go-playground/validator v10.

A single validator instance is shared by every handler. Field names in error
messages come from the `query` struct tag, so a missing start_date parameter
reads "start_date is required" rather than "StartDate is required".

# Tags In Use

  - required: the parameter must be present and non-empty
  - datetime=2006-01-02: dates on routes that already require them
    (APOD range, NEO feed, Earth imagery)
  - latitude, longitude: Earth imagery coordinates

Optional parameters on routes with nothing required (APOD date, Mars rover
and earth_date) carry no format rules and are forwarded to the upstream.

# Usage

	params := models.NEOFeedParams{StartDate: q.Get("start_date"), EndDate: q.Get("end_date")}
	if verr := validation.ValidateStruct(&params); verr != nil {
	    apiErr := verr.ToAPIError() // Code, Message and per-field Details
	    ...
	}

All validation failures are reported with the VALIDATION_ERROR code.
*/
package validation
