package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront-checkout/internal/core/logger"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// ErrUpstreamUnavailable is returned while the circuit to the storefront API is open.
var ErrUpstreamUnavailable = errors.New("storefront API unavailable")

// errUpstreamStatus marks a 5xx response as a breaker failure without hiding the response.
var errUpstreamStatus = errors.New("upstream server error")

// BreakerSettings configures the circuit breaker around the storefront API.
type BreakerSettings struct {
	// Name identifies the breaker in logs.
	Name string
	// FailureThreshold is the number of consecutive failures that opens the circuit.
	FailureThreshold uint32
	// OpenTimeout is how long the circuit stays open before half-open probing.
	OpenTimeout time.Duration
}

// BreakerRoundTripper fails fast while the upstream keeps failing. It never retries.
type BreakerRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	breaker *gobreaker.CircuitBreaker[*http.Response]
}

// NewBreakerRoundTripper wraps proxied with a circuit breaker.
func NewBreakerRoundTripper(proxied http.RoundTripper, s BreakerSettings) *BreakerRoundTripper {
	threshold := s.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Get().Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &BreakerRoundTripper{Proxied: proxied, breaker: cb}
}

// isSuccessful counts a request against the breaker only when the upstream is at fault.
// A caller cancelling or running out of its own deadline says nothing about upstream health.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, ErrUpstreamTimeout) {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// RoundTrip executes the request through the breaker.
func (b *BreakerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := b.breaker.Execute(func() (*http.Response, error) {
		resp, err := b.Proxied.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errUpstreamStatus
		}
		return resp, nil
	})

	switch {
	case errors.Is(err, errUpstreamStatus):
		return resp, nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	case err != nil:
		return nil, err
	}

	return resp, nil
}
