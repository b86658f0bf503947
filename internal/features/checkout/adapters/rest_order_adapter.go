package adapters

import (
	"context"
	"errors"
	"net/http"

	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/features/checkout/domain"
)

// ErrMissingOrderID is returned when the order endpoint answers without an id.
var ErrMissingOrderID = errors.New("order response carried no id")

// RESTOrderAdapter implements ports.OrderAPI against the storefront REST API.
type RESTOrderAdapter struct {
	client  *http.Client
	baseURL string
}

// NewRESTOrderAdapter creates a new instance of RESTOrderAdapter.
func NewRESTOrderAdapter(client *http.Client, baseURL string) *RESTOrderAdapter {
	return &RESTOrderAdapter{client: client, baseURL: baseURL}
}

type orderResponse struct {
	ID   httpclient.FlexID `json:"id"`
	Data *struct {
		ID httpclient.FlexID `json:"id"`
	} `json:"data"`
}

// CreateOrder implements ports.OrderAPI.
func (a *RESTOrderAdapter) CreateOrder(ctx context.Context, token string, order domain.OrderRequest) (string, error) {
	var resp orderResponse
	if err := httpclient.DoJSON(ctx, a.client, http.MethodPost, a.baseURL+"/orders", token, order, &resp); err != nil {
		return "", err
	}

	id := resp.ID.String()
	if id == "" && resp.Data != nil {
		id = resp.Data.ID.String()
	}
	if id == "" {
		return "", ErrMissingOrderID
	}
	return id, nil
}
