package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront-checkout/internal/core/httpclient"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cartJSON = `{
	"id": 1,
	"items": [
		{"id": 7, "product_id": 42, "quantity": 2, "price": 300, "subtotal": 600, "product": {"id": 42, "name": "Pashmina"}}
	],
	"cart_total": 600
}`

func newAdapter(url string) *RESTCartAdapter {
	return NewRESTCartAdapter(httpclient.NewClient(httpclient.Options{Timeout: time.Second}), url)
}

func TestRESTCartAdapter_GetCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(cartJSON))
	}))
	defer server.Close()

	snap, err := newAdapter(server.URL).GetCart(context.Background(), "tok")
	require.NoError(t, err)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, int64(7), snap.Items[0].ID)
	assert.True(t, decimal.NewFromInt(600).Equal(snap.Total))
}

func TestRESTCartAdapter_GetCart_Envelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": ` + cartJSON + `}`))
	}))
	defer server.Close()

	snap, err := newAdapter(server.URL).GetCart(context.Background(), "tok")
	require.NoError(t, err)
	assert.Len(t, snap.Items, 1)
}

func TestRESTCartAdapter_AddLine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart/items", r.URL.Path)

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 42, body["product_id"])
		assert.Equal(t, 2, body["quantity"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(cartJSON))
	}))
	defer server.Close()

	snap, err := newAdapter(server.URL).AddLine(context.Background(), "tok", 42, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Items[0].Quantity)
}

func TestRESTCartAdapter_UpdateLine(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/cart/items/7", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"quantity": 5}`, string(body))
		w.Write([]byte(cartJSON))
	}))
	defer server.Close()

	_, err := newAdapter(server.URL).UpdateLine(context.Background(), "tok", 7, 5)
	require.NoError(t, err)
}

func TestRESTCartAdapter_DeleteLine_NoContentRefetches(t *testing.T) {
	var gets int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodDelete:
			assert.Equal(t, "/cart/items/7", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			gets++
			w.Write([]byte(`{"id": 1, "items": [], "cart_total": 0}`))
		}
	}))
	defer server.Close()

	snap, err := newAdapter(server.URL).DeleteLine(context.Background(), "tok", 7)
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.Equal(t, 1, gets)
}

func TestRESTCartAdapter_Error(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "out of stock"}`))
	}))
	defer server.Close()

	_, err := newAdapter(server.URL).AddLine(context.Background(), "tok", 1, 1)
	require.Error(t, err)
	assert.True(t, httpclient.IsStatus(err, http.StatusBadRequest))
	assert.Contains(t, err.Error(), "add cart line")
}
