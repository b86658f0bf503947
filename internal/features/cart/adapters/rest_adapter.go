package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/features/cart/domain"
)

// RESTCartAdapter implements ports.CartAPI against the storefront REST API.
type RESTCartAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// baseURL is the storefront API root.
	baseURL string
}

// NewRESTCartAdapter creates a new instance of RESTCartAdapter.
func NewRESTCartAdapter(client *http.Client, baseURL string) *RESTCartAdapter {
	return &RESTCartAdapter{client: client, baseURL: baseURL}
}

type addLineRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type updateLineRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart fetches the caller's cart.
func (a *RESTCartAdapter) GetCart(ctx context.Context, token string) (*domain.CartSnapshot, error) {
	var raw json.RawMessage
	if err := httpclient.DoJSON(ctx, a.client, http.MethodGet, a.baseURL+"/cart", token, nil, &raw); err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	snap, err := decodeSnapshot(raw)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return &domain.CartSnapshot{}, nil
	}
	return snap, nil
}

// AddLine creates a new cart line.
func (a *RESTCartAdapter) AddLine(ctx context.Context, token string, productID int64, quantity int) (*domain.CartSnapshot, error) {
	var raw json.RawMessage
	body := addLineRequest{ProductID: productID, Quantity: quantity}
	if err := httpclient.DoJSON(ctx, a.client, http.MethodPost, a.baseURL+"/cart/items", token, body, &raw); err != nil {
		return nil, fmt.Errorf("add cart line: %w", err)
	}
	return a.snapshotOrRefetch(ctx, token, raw)
}

// UpdateLine sets the quantity of an existing line.
func (a *RESTCartAdapter) UpdateLine(ctx context.Context, token string, lineID int64, quantity int) (*domain.CartSnapshot, error) {
	var raw json.RawMessage
	url := fmt.Sprintf("%s/cart/items/%d", a.baseURL, lineID)
	if err := httpclient.DoJSON(ctx, a.client, http.MethodPatch, url, token, updateLineRequest{Quantity: quantity}, &raw); err != nil {
		return nil, fmt.Errorf("update cart line %d: %w", lineID, err)
	}
	return a.snapshotOrRefetch(ctx, token, raw)
}

// DeleteLine removes a line.
func (a *RESTCartAdapter) DeleteLine(ctx context.Context, token string, lineID int64) (*domain.CartSnapshot, error) {
	var raw json.RawMessage
	url := fmt.Sprintf("%s/cart/items/%d", a.baseURL, lineID)
	if err := httpclient.DoJSON(ctx, a.client, http.MethodDelete, url, token, nil, &raw); err != nil {
		return nil, fmt.Errorf("delete cart line %d: %w", lineID, err)
	}
	return a.snapshotOrRefetch(ctx, token, raw)
}

// snapshotOrRefetch uses the mutation response when it is a snapshot and reads the cart otherwise
// (some deployments answer DELETE with 204).
func (a *RESTCartAdapter) snapshotOrRefetch(ctx context.Context, token string, raw json.RawMessage) (*domain.CartSnapshot, error) {
	snap, err := decodeSnapshot(raw)
	if err != nil {
		return nil, err
	}
	if snap != nil {
		return snap, nil
	}
	return a.GetCart(ctx, token)
}

// decodeSnapshot accepts a bare snapshot or a {data: snapshot} envelope. Empty bodies yield nil.
func decodeSnapshot(raw json.RawMessage) (*domain.CartSnapshot, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var probe struct {
		Data  json.RawMessage `json:"data"`
		Items json.RawMessage `json:"items"`
		Total json.RawMessage `json:"cart_total"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	isSnapshot := probe.Items != nil || probe.Total != nil
	if !isSnapshot && probe.Data != nil {
		return decodeSnapshot(probe.Data)
	}
	if !isSnapshot {
		return nil, nil
	}

	var snap domain.CartSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &snap, nil
}
