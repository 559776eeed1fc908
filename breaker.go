// Plotpost - Plot.ly REST API Client for Go
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotpost

package plotpost

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
)

// breakerTransport wraps a transport with a circuit breaker so a dead or
// degraded API endpoint fails fast instead of tying up callers in
// timeouts. The breaker uses real time for its interval and timeout
// calculations; unit tests should exercise the wrapped transport
// directly.
type breakerTransport struct {
	next   poster
	cb     *gobreaker.CircuitBreaker[map[string]any]
	logger zerolog.Logger
}

// newBreakerTransport configures the breaker:
//   - opens at >=60% failure rate with at least 10 requests observed
//   - 1 minute measurement window while closed
//   - 2 minute open period before probing with up to 3 half-open requests
func newBreakerTransport(next poster, logger zerolog.Logger) *breakerTransport {
	cb := gobreaker.NewCircuitBreaker[map[string]any](gobreaker.Settings{
		Name:        "plotpost-api",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= 0.6 {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening API circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info().
				Str("breaker", name).
				Str("from", breakerState(from)).
				Str("to", breakerState(to)).
				Msg("circuit breaker state transition")
		},
	})

	return &breakerTransport{next: next, cb: cb, logger: logger}
}

func (b *breakerTransport) postForm(ctx context.Context, path string, form url.Values) (map[string]any, error) {
	result, err := b.cb.Execute(func() (map[string]any, error) {
		return b.next.postForm(ctx, path, form)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			b.logger.Warn().Err(err).Msg("request rejected by circuit breaker")
			return nil, fmt.Errorf("request rejected by circuit breaker: %w", err)
		}
		return nil, err
	}
	return result, nil
}

func breakerState(state gobreaker.State) string {
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
