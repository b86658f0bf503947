package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/features/checkout/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderAdapter(url string) *RESTOrderAdapter {
	return NewRESTOrderAdapter(httpclient.NewClient(httpclient.Options{Timeout: time.Second}), url)
}

func TestRESTOrderAdapter_CreateOrder(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"NumericID", `{"id": 42}`, "42"},
		{"StringID", `{"id": "ORD-42"}`, "ORD-42"},
		{"Envelope", `{"data": {"id": 77, "status": "pending"}}`, "77"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/orders", r.URL.Path)
				assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

				var got map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, "Ram Shrestha", got["full_name"])
				assert.Equal(t, 900.0, got["total_amount"])

				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			id, err := newOrderAdapter(server.URL).CreateOrder(context.Background(), "tok", domain.OrderRequest{
				FullName:    "Ram Shrestha",
				TotalAmount: json.Number("900.00"),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestRESTOrderAdapter_MissingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer server.Close()

	_, err := newOrderAdapter(server.URL).CreateOrder(context.Background(), "tok", domain.OrderRequest{})
	assert.ErrorIs(t, err, ErrMissingOrderID)
}

func TestRESTOrderAdapter_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "product out of stock"}`))
	}))
	defer server.Close()

	_, err := newOrderAdapter(server.URL).CreateOrder(context.Background(), "tok", domain.OrderRequest{})
	require.Error(t, err)
	assert.True(t, httpclient.IsStatus(err, http.StatusUnprocessableEntity))
	assert.Contains(t, err.Error(), "out of stock")
}
