// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

/*
Package models defines the data structures shared between the HTTP layer and
the upstream client.

Key Types:
  - APIResponse: envelope used for every error response
  - HealthStatus: body of GET /api/health
  - Query parameter structs (APODParams, NEOFeedParams, ...): one per route,
    carrying `query` names and `validate` rules

Upstream payloads are deliberately not modelled. The proxy forwards the
upstream body byte-for-byte, so fields added upstream reach clients without
a code change.
*/
package models
