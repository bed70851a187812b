// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/skyport/internal/logging"
	"github.com/tomtom215/skyport/internal/models"
	"github.com/tomtom215/skyport/internal/nasa"
	"github.com/tomtom215/skyport/internal/validation"
)

// UpstreamProxyConfig describes one proxy endpoint.
// P is the parameter type (e.g. models.NEOFeedParams).
type UpstreamProxyConfig[P any] struct {
	// Endpoint names the upstream operation in logs.
	Endpoint string

	// ParseParams extracts parameters from the request. Validation runs on
	// the result afterwards.
	ParseParams func(r *http.Request) *P

	// CallClient invokes the provider with the validated parameters.
	CallClient func(ctx context.Context, client nasa.Provider, params *P) (*nasa.Payload, error)

	// ErrorMessage is returned to the client when the upstream call fails.
	ErrorMessage string
}

// proxyUpstreamRequest implements the shared proxy flow: parse and validate
// (400), client availability (503), a single upstream call (500 with a
// generic message on failure) and a verbatim 200 relay on success.
func proxyUpstreamRequest[P any](h *Handler, w http.ResponseWriter, r *http.Request, cfg UpstreamProxyConfig[P]) {
	params := cfg.ParseParams(r)
	if verr := validation.ValidateStruct(params); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	if h.client == nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeService, "Upstream client not available", nil)
		return
	}

	payload, err := cfg.CallClient(r.Context(), h.client, params)
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("endpoint", cfg.Endpoint).
			Str("error", logging.RedactSecrets(err.Error())).
			Msg("Upstream request failed")
		respondError(w, r, http.StatusInternalServerError, models.ErrCodeUpstream, cfg.ErrorMessage, nil)
		return
	}

	respondPayload(w, payload)
}
