// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package nasa

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/skyport/internal/logging"
)

// maxErrorBodySize limits the amount of an error response kept for logs.
const maxErrorBodySize = 64 * 1024

// MaxPayloadSize bounds a successful upstream body. The largest legitimate
// answers (seven-day NEO feeds, 100-item image searches) stay well below it.
const MaxPayloadSize = 32 << 20

// readBodyForError reads the response body for error reporting (max 64KB).
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	if len(body) == maxErrorBodySize {
		return string(body) + "\n... (truncated)"
	}
	return string(body)
}

// apiRequest holds the parts of one upstream call.
type apiRequest struct {
	endpoint string
	baseURL  string
	path     string
	params   url.Values
}

// newAPIRequest creates a request for path under baseURL. endpoint names the
// operation in logs and metrics.
func newAPIRequest(endpoint, baseURL, path string) *apiRequest {
	return &apiRequest{
		endpoint: endpoint,
		baseURL:  baseURL,
		path:     path,
		params:   url.Values{},
	}
}

// addParam adds a parameter to the request when value is non-empty.
func (r *apiRequest) addParam(key, value string) *apiRequest {
	if value != "" {
		r.params.Set(key, value)
	}
	return r
}

// addIntParam adds an integer parameter, including zero.
func (r *apiRequest) addIntParam(key string, value int) *apiRequest {
	r.params.Set(key, strconv.Itoa(value))
	return r
}

// buildURL constructs the full URL with all parameters.
func (r *apiRequest) buildURL() string {
	u := r.baseURL + r.path
	if len(r.params) == 0 {
		return u
	}
	return u + "?" + r.params.Encode()
}

// Payload is an upstream response body together with its declared media type.
type Payload struct {
	Body        []byte
	ContentType string
}

// IsJSON reports whether the upstream declared a JSON body. An absent
// Content-Type is treated as JSON.
func (p *Payload) IsJSON() bool {
	return isJSONContentType(p.ContentType)
}

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// executeRequest performs a single GET and returns the raw body.
func executeRequest(ctx context.Context, client *http.Client, req *apiRequest) (*Payload, error) {
	reqURL := req.buildURL()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%s: create request failed: %s", req.endpoint, logging.RedactSecrets(err.Error()))
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(httpReq)
	if err != nil {
		// *url.Error embeds the request URL, api_key included.
		return nil, &transportError{endpoint: req.endpoint, msg: logging.RedactSecrets(err.Error()), cause: ctx.Err()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			Endpoint:   req.endpoint,
			StatusCode: resp.StatusCode,
			Body:       readBodyForError(resp.Body),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxPayloadSize+1))
	if err != nil {
		return nil, &transportError{endpoint: req.endpoint, msg: "read body: " + logging.RedactSecrets(err.Error()), cause: ctx.Err()}
	}
	if len(body) > MaxPayloadSize {
		return nil, fmt.Errorf("%s: %w", req.endpoint, ErrPayloadTooLarge)
	}

	payload := &Payload{Body: body, ContentType: resp.Header.Get("Content-Type")}
	if payload.IsJSON() && !json.Valid(body) {
		return nil, fmt.Errorf("%s: %w", req.endpoint, ErrInvalidPayload)
	}

	return payload, nil
}

// transportError is a network-level failure with secrets already scrubbed.
// cause carries the context error, if any, so errors.Is(err, context.Canceled)
// keeps working.
type transportError struct {
	endpoint string
	msg      string
	cause    error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("%s: request failed: %s", e.endpoint, e.msg)
}

func (e *transportError) Unwrap() error {
	return e.cause
}
