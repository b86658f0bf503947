package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/features/addresses/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(url string) *RESTAddressAdapter {
	return NewRESTAddressAdapter(httpclient.NewClient(httpclient.Options{Timeout: time.Second}), url)
}

func TestRESTAddressAdapter_List_BareArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shipping-addresses", r.URL.Path)
		w.Write([]byte(`[{"id": 1, "street": "Baluwatar", "city": "Kathmandu", "state": "Bagmati", "country": "Nepal", "is_default": true}]`))
	}))
	defer server.Close()

	list, err := newAdapter(server.URL).List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
	assert.True(t, list[0].IsDefault)
}

func TestRESTAddressAdapter_List_Envelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"id": 2, "street": "Lakeside", "city": "Pokhara", "state": "Gandaki", "country": "Nepal", "latitude": 28.2, "longitude": 83.95}]}`))
	}))
	defer server.Close()

	list, err := newAdapter(server.URL).List(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pokhara", list[0].City)
	require.NotNil(t, list[0].Latitude)
	assert.InDelta(t, 28.2, *list[0].Latitude, 0.0001)
}

func TestRESTAddressAdapter_List_EmptyEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null}`))
	}))
	defer server.Close()

	list, err := newAdapter(server.URL).List(context.Background(), "tok")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestRESTAddressAdapter_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "id", "client must not choose the id")
		assert.Equal(t, "Pokhara", body["city"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	err := newAdapter(server.URL).Create(context.Background(), "tok", domain.ShippingAddress{ID: 9, City: "Pokhara"})
	require.NoError(t, err)
}

func TestRESTAddressAdapter_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/shipping-addresses/3", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	require.NoError(t, newAdapter(server.URL).Delete(context.Background(), "tok", 3))
}

func TestRESTAddressAdapter_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := newAdapter(server.URL).Delete(context.Background(), "tok", 3)
	require.Error(t, err)
	assert.True(t, httpclient.IsStatus(err, http.StatusNotFound))
}
