// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

/*
Package services provides suture.Service wrappers for Skyport components.

HTTPServerService runs an *http.Server on a listener obtained from a
ListenFunc, and shuts it down gracefully when its context is canceled.
PortListener is the ListenFunc used in production: it binds the configured
port and, when enabled, falls back to the next port if the first is in use.

Every wrapper implements fmt.Stringer so suture can name it in log events.
*/
package services
