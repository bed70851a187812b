// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package services

import (
	"errors"
	"net"
	"strconv"
	"sync"
	"syscall"

	"github.com/tomtom215/skyport/internal/logging"
)

// PortListener opens TCP listeners for the HTTP server. When the configured
// port is taken and fallback is enabled it tries port+1 once. The address
// that worked is reused on later calls, so restarts keep the same port.
type PortListener struct {
	host     string
	port     int
	fallback bool

	mu    sync.Mutex
	bound string
}

// NewPortListener creates a PortListener for host:port.
func NewPortListener(host string, port int, fallback bool) *PortListener {
	return &PortListener{host: host, port: port, fallback: fallback}
}

// Listen opens the listener. It satisfies ListenFunc.
func (p *PortListener) Listen() (net.Listener, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.bound != "" {
		return net.Listen("tcp", p.bound)
	}

	addr := net.JoinHostPort(p.host, strconv.Itoa(p.port))
	ln, err := net.Listen("tcp", addr)
	if err != nil && p.fallback && errors.Is(err, syscall.EADDRINUSE) {
		next := net.JoinHostPort(p.host, strconv.Itoa(p.port+1))
		logging.Warn().
			Str("addr", addr).
			Str("fallback_addr", next).
			Msg("Port in use, trying next port")
		addr = next
		ln, err = net.Listen("tcp", addr)
	}
	if err != nil {
		return nil, err
	}

	p.bound = ln.Addr().String()
	logging.Info().Str("addr", p.bound).Msg("HTTP listener bound")
	return ln, nil
}

// Addr returns the bound address with the resolved port, or "" before the
// first successful Listen.
func (p *PortListener) Addr() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bound
}
