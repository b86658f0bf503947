package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUpstreamTimeout is returned when the storefront API does not answer within the client timeout.
var ErrUpstreamTimeout = errors.New("storefront API timed out")

// TimeoutRoundTripper bounds each request, body included, by Timeout.
// Expiry is reported as ErrUpstreamTimeout so it can be told apart from the caller's own deadline.
type TimeoutRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// Timeout bounds the request until its body is closed.
	Timeout time.Duration
}

// RoundTrip executes the request under the timeout.
func (t *TimeoutRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, cancel := context.WithTimeoutCause(req.Context(), t.Timeout, ErrUpstreamTimeout)

	resp, err := t.Proxied.RoundTrip(req.WithContext(ctx))
	if err != nil {
		cause := context.Cause(ctx)
		cancel()
		if errors.Is(cause, ErrUpstreamTimeout) {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
		}
		return nil, err
	}

	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
