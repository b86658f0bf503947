package adapters

import (
	"context"
	"errors"

	"storefront-checkout/internal/features/payment/domain"

	"github.com/shopspring/decimal"
)

// RedirectGateway sends the customer straight to the internal success page.
// It serves cash on delivery and the Khalti test-mode stub, which never calls Khalti.
type RedirectGateway struct {
	provider      domain.Provider
	publicBaseURL string
}

// NewCashOnDeliveryGateway creates the gateway for cash on delivery.
func NewCashOnDeliveryGateway(publicBaseURL string) *RedirectGateway {
	return &RedirectGateway{provider: domain.ProviderCOD, publicBaseURL: publicBaseURL}
}

// NewKhaltiStubGateway creates the test-mode Khalti gateway.
func NewKhaltiStubGateway(publicBaseURL string) *RedirectGateway {
	return &RedirectGateway{provider: domain.ProviderKhalti, publicBaseURL: publicBaseURL}
}

// Handoff implements ports.Gateway.
func (g *RedirectGateway) Handoff(ctx context.Context, orderID string, amount decimal.Decimal) (*domain.Handoff, error) {
	if orderID == "" {
		return nil, errors.New("order id is required")
	}
	return &domain.Handoff{
		OrderID:  orderID,
		Provider: g.provider,
		Kind:     domain.HandoffRedirect,
		URL:      domain.PageURL(g.publicBaseURL, domain.SuccessPath, orderID),
		Amount:   amount,
	}, nil
}
