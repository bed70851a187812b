// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

/*
Package nasa is the upstream client for the public NASA data APIs.

Three hosts are involved:

  - api.nasa.gov: APOD, Mars rover photos, NeoWs feed, Earth imagery.
    Every call carries the api_key query parameter.
  - images-api.nasa.gov: image and video library search (no key).
  - epic.gsfc.nasa.gov: EPIC natural-color imagery (no key).

Client implements Provider. Each operation issues exactly one GET, bounded by
the caller's context and the configured per-call timeout. There are no retries
and no caching. The upstream body is returned untouched as a Payload.

CircuitBreakerClient wraps any Provider with sony/gobreaker. When the upstream
keeps failing the breaker opens and calls fail fast with gobreaker.ErrOpenState
until the half-open probe succeeds. Upstream 4xx answers are caller mistakes
and are not counted against the breaker.

Error types:

  - *UpstreamError: non-2xx status, with a truncated body for logs
  - ErrInvalidPayload: the upstream declared JSON but sent something else
  - ErrPayloadTooLarge: the body exceeded MaxPayloadSize

Secrets: request URLs are only ever logged through logging.RedactURL, and
transport errors are scrubbed with logging.RedactSecrets before being wrapped,
because *url.Error embeds the full URL including api_key.
*/
package nasa
