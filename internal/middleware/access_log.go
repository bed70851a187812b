// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/skyport/internal/logging"
)

// AccessLog writes one log line per completed request. Query strings are
// logged with secret parameters redacted.
func AccessLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		event := logging.Ctx(r.Context()).Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = logging.Ctx(r.Context()).Error()
		case status >= http.StatusBadRequest:
			event = logging.Ctx(r.Context()).Warn()
		}

		event.
			Str("method", r.Method).
			Str("path", logging.SanitizeValue(r.URL.Path)).
			Str("query", logging.RedactSecrets(logging.SanitizeValue(r.URL.RawQuery))).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", logging.SanitizeValue(r.UserAgent())).
			Msg("request completed")
	}
}
