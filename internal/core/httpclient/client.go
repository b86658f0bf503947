package httpclient

import (
	"net/http"
	"time"

	"storefront-checkout/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.FromContext(req.Context())

	log.Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// Options configures the storefront client.
type Options struct {
	// Timeout bounds each request end to end.
	Timeout time.Duration
	// Breaker enables the circuit breaker when non-nil.
	Breaker *BreakerSettings
}

// NewClient returns an http.Client with logging middleware, a per-request timeout and,
// optionally, a circuit breaker. The breaker sits outside the timeout so upstream
// timeouts trip it while the caller's own cancellation does not.
func NewClient(opts Options) *http.Client {
	var transport http.RoundTripper = &LoggingRoundTripper{
		Proxied: http.DefaultTransport,
	}

	if opts.Timeout > 0 {
		transport = &TimeoutRoundTripper{Proxied: transport, Timeout: opts.Timeout}
	}

	if opts.Breaker != nil {
		transport = NewBreakerRoundTripper(transport, *opts.Breaker)
	}

	return &http.Client{Transport: transport}
}
