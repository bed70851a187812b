// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package nasa

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidPayload indicates a body declared as JSON that does not parse.
	ErrInvalidPayload = errors.New("upstream returned invalid JSON")

	// ErrPayloadTooLarge indicates a body larger than MaxPayloadSize.
	ErrPayloadTooLarge = errors.New("upstream response exceeds size limit")
)

// UpstreamError is returned when the upstream answers with a non-2xx status.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// IsClientError reports whether the upstream rejected the request itself
// (bad date, unknown rover) rather than failing.
func (e *UpstreamError) IsClientError() bool {
	return e.StatusCode >= http.StatusBadRequest &&
		e.StatusCode < http.StatusInternalServerError &&
		e.StatusCode != http.StatusTooManyRequests
}

// isClientError unwraps err looking for an upstream 4xx.
func isClientError(err error) bool {
	var upErr *UpstreamError
	return errors.As(err, &upErr) && upErr.IsClientError()
}
