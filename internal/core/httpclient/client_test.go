package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"storefront-checkout/internal/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies that requests are passed through while logged.
func TestLoggingRoundTripper(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	logger.Init("development", "debug")

	client := NewClient(Options{Timeout: time.Second})
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLoggingRoundTripper_Error verifies that failed requests are surfaced.
func TestLoggingRoundTripper_Error(t *testing.T) {
	logger.Init("development", "debug")

	client := NewClient(Options{Timeout: time.Second})
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}

func TestBreakerRoundTripper_OpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewClient(Options{
		Timeout: time.Second,
		Breaker: &BreakerSettings{Name: "test", FailureThreshold: 2, OpenTimeout: time.Minute},
	})

	for i := 0; i < 2; i++ {
		resp, err := client.Get(ts.URL)
		require.NoError(t, err, "5xx responses are returned to the caller")
		resp.Body.Close()
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	}

	_, err := client.Get(ts.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Equal(t, int32(2), calls.Load(), "open circuit must not reach the upstream")
}

func TestBreakerRoundTripper_ClientErrorsDoNotTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	client := NewClient(Options{
		Timeout: time.Second,
		Breaker: &BreakerSettings{Name: "test", FailureThreshold: 1, OpenTimeout: time.Minute},
	})

	for i := 0; i < 3; i++ {
		resp, err := client.Get(ts.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}
}

func slowHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("slow") != "" {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(time.Second):
		}
	}
	w.WriteHeader(http.StatusOK)
}

func TestBreakerRoundTripper_CallerCancellationDoesNotTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(slowHandler))
	defer ts.Close()

	client := NewClient(Options{
		Timeout: time.Second,
		Breaker: &BreakerSettings{Name: "test", FailureThreshold: 3, OpenTimeout: time.Minute},
	})

	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		err := DoJSON(ctx, client, http.MethodGet, ts.URL+"?slow=1", "", nil, nil)
		cancel()
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NotErrorIs(t, err, ErrUpstreamTimeout)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Error(t, DoJSON(ctx, client, http.MethodGet, ts.URL, "", nil, nil))

	err := DoJSON(context.Background(), client, http.MethodGet, ts.URL, "", nil, nil)
	assert.NoError(t, err, "callers leaving must not open the circuit")
}

func TestBreakerRoundTripper_UpstreamTimeoutsTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(slowHandler))
	defer ts.Close()

	client := NewClient(Options{
		Timeout: 20 * time.Millisecond,
		Breaker: &BreakerSettings{Name: "test", FailureThreshold: 2, OpenTimeout: time.Minute},
	})

	for i := 0; i < 2; i++ {
		err := DoJSON(context.Background(), client, http.MethodGet, ts.URL+"?slow=1", "", nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUpstreamTimeout)
	}

	err := DoJSON(context.Background(), client, http.MethodGet, ts.URL, "", nil, nil)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestTimeoutRoundTripper_BodyReadableUntilClosed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"quantity": 3}`))
	}))
	defer ts.Close()

	var out struct {
		Quantity int `json:"quantity"`
	}
	err := DoJSON(context.Background(), NewClient(Options{Timeout: time.Second}), http.MethodGet, ts.URL, "", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Quantity)
}

func TestDoJSON(t *testing.T) {
	type payload struct {
		Quantity int `json:"quantity"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload{Quantity: in.Quantity * 2})
	}))
	defer ts.Close()

	var out payload
	err := DoJSON(context.Background(), NewClient(Options{Timeout: time.Second}), http.MethodPost, ts.URL, "tok", payload{Quantity: 2}, &out)
	require.NoError(t, err)
	assert.Equal(t, 4, out.Quantity)
}

func TestDoJSON_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"bad"}`))
	}))
	defer ts.Close()

	err := DoJSON(context.Background(), NewClient(Options{Timeout: time.Second}), http.MethodGet, ts.URL, "", nil, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Contains(t, apiErr.Body, "bad")
	assert.True(t, IsStatus(err, http.StatusUnprocessableEntity))
}

func TestDoJSON_NoContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	var out map[string]any
	err := DoJSON(context.Background(), NewClient(Options{Timeout: time.Second}), http.MethodDelete, ts.URL, "", nil, &out)
	assert.NoError(t, err)
}

func TestFlexID_UnmarshalJSON(t *testing.T) {
	var v struct {
		A FlexID `json:"a"`
		B FlexID `json:"b"`
		C FlexID `json:"c"`
	}

	err := json.Unmarshal([]byte(`{"a": 42, "b": "ord_7", "c": null}`), &v)
	require.NoError(t, err)
	assert.Equal(t, "42", v.A.String())
	assert.Equal(t, "ord_7", v.B.String())
	assert.Equal(t, "", v.C.String())

	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &v))
}
