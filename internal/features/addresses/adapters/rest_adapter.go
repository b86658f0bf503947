package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/features/addresses/domain"
)

// RESTAddressAdapter implements ports.AddressAPI against the storefront REST API.
type RESTAddressAdapter struct {
	client  *http.Client
	baseURL string
}

// NewRESTAddressAdapter creates a new instance of RESTAddressAdapter.
func NewRESTAddressAdapter(client *http.Client, baseURL string) *RESTAddressAdapter {
	return &RESTAddressAdapter{client: client, baseURL: baseURL}
}

// List fetches the caller's saved addresses.
func (a *RESTAddressAdapter) List(ctx context.Context, token string) ([]domain.ShippingAddress, error) {
	var raw json.RawMessage
	if err := httpclient.DoJSON(ctx, a.client, http.MethodGet, a.baseURL+"/shipping-addresses", token, nil, &raw); err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return decodeList(raw)
}

// Create saves a new address.
func (a *RESTAddressAdapter) Create(ctx context.Context, token string, address domain.ShippingAddress) error {
	address.ID = 0
	if err := httpclient.DoJSON(ctx, a.client, http.MethodPost, a.baseURL+"/shipping-addresses", token, address, nil); err != nil {
		return fmt.Errorf("create address: %w", err)
	}
	return nil
}

// Delete removes a saved address.
func (a *RESTAddressAdapter) Delete(ctx context.Context, token string, id int64) error {
	url := fmt.Sprintf("%s/shipping-addresses/%d", a.baseURL, id)
	if err := httpclient.DoJSON(ctx, a.client, http.MethodDelete, url, token, nil, nil); err != nil {
		return fmt.Errorf("delete address %d: %w", id, err)
	}
	return nil
}

// decodeList accepts either a bare array or a {data: [...]} envelope.
func decodeList(raw json.RawMessage) ([]domain.ShippingAddress, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []domain.ShippingAddress{}, nil
	}

	var list []domain.ShippingAddress
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var envelope struct {
		Data []domain.ShippingAddress `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode addresses: %w", err)
	}
	if envelope.Data == nil {
		return []domain.ShippingAddress{}, nil
	}
	return envelope.Data, nil
}
