// Skyport - Space Data API Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skyport

package nasa

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/skyport/internal/logging"
	"github.com/tomtom215/skyport/internal/metrics"
	"github.com/tomtom215/skyport/internal/models"
)

// BreakerName is the circuit breaker name used in metrics.
const BreakerName = "nasa-api"

// CircuitBreakerClient wraps a Provider with the circuit breaker pattern.
//
// The breaker uses real time (via sony/gobreaker) for its interval and timeout.
// Tests that need a tripped breaker drive it with a failing Provider and a
// short timeout rather than mocking the clock.
type CircuitBreakerClient struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker[*Payload]
	name     string
}

// BreakerSettings tunes the circuit breaker.
type BreakerSettings struct {
	Name        string
	MaxRequests uint32        // Probes allowed in half-open state
	Interval    time.Duration // Count reset period while closed
	Timeout     time.Duration // Open duration before half-open
	MinRequests uint32        // Requests needed before the failure ratio is considered
	FailureRate float64       // Ratio of failures that opens the circuit
}

// DefaultBreakerSettings returns the production breaker configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:        BreakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		MinRequests: 10,
		FailureRate: 0.6,
	}
}

// NewCircuitBreakerClient wraps provider with a breaker built from settings.
func NewCircuitBreakerClient(provider Provider, settings BreakerSettings) *CircuitBreakerClient {
	if settings.Name == "" {
		settings.Name = BreakerName
	}
	name := settings.Name

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[*Payload](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRate

			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		// Upstream 4xx means the request was bad, not that the upstream is down.
		// Context cancellation means the client went away.
		IsSuccessful: func(err error) bool {
			return err == nil || isClientError(err) || errors.Is(err, context.Canceled)
		},
	})

	return &CircuitBreakerClient{
		provider: provider,
		cb:       cb,
		name:     name,
	}
}

// execute wraps an upstream call with circuit breaker protection.
func (cbc *CircuitBreakerClient) execute(fn func() (*Payload, error)) (*Payload, error) {
	result, err := cbc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Str("breaker", cbc.name).Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
			counts := cbc.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)

	return result, nil
}

// State returns the breaker state as closed, half-open or open.
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Name returns the wrapped provider's name.
func (cbc *CircuitBreakerClient) Name() string {
	return cbc.provider.Name()
}

// APOD fetches one APOD with circuit breaker protection
func (cbc *CircuitBreakerClient) APOD(ctx context.Context, p *models.APODParams) (*Payload, error) {
	return cbc.execute(func() (*Payload, error) { return cbc.provider.APOD(ctx, p) })
}

// APODRange fetches an APOD date range with circuit breaker protection
func (cbc *CircuitBreakerClient) APODRange(ctx context.Context, p *models.APODRangeParams) (*Payload, error) {
	return cbc.execute(func() (*Payload, error) { return cbc.provider.APODRange(ctx, p) })
}

// MarsPhotos fetches rover photos with circuit breaker protection
func (cbc *CircuitBreakerClient) MarsPhotos(ctx context.Context, p *models.MarsPhotosParams) (*Payload, error) {
	return cbc.execute(func() (*Payload, error) { return cbc.provider.MarsPhotos(ctx, p) })
}

// NEOFeed fetches the NEO feed with circuit breaker protection
func (cbc *CircuitBreakerClient) NEOFeed(ctx context.Context, p *models.NEOFeedParams) (*Payload, error) {
	return cbc.execute(func() (*Payload, error) { return cbc.provider.NEOFeed(ctx, p) })
}

// SearchImages searches the image library with circuit breaker protection
func (cbc *CircuitBreakerClient) SearchImages(ctx context.Context, p *models.ImageSearchParams) (*Payload, error) {
	return cbc.execute(func() (*Payload, error) { return cbc.provider.SearchImages(ctx, p) })
}

// EPIC fetches EPIC imagery metadata with circuit breaker protection
func (cbc *CircuitBreakerClient) EPIC(ctx context.Context, p *models.EPICParams) (*Payload, error) {
	return cbc.execute(func() (*Payload, error) { return cbc.provider.EPIC(ctx, p) })
}

// EarthImagery fetches Earth imagery with circuit breaker protection
func (cbc *CircuitBreakerClient) EarthImagery(ctx context.Context, p *models.EarthImageryParams) (*Payload, error) {
	return cbc.execute(func() (*Payload, error) { return cbc.provider.EarthImagery(ctx, p) })
}
