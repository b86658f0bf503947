package adapters

import (
	"context"
	"errors"

	"storefront-checkout/internal/features/payment/domain"

	"github.com/shopspring/decimal"
)

// EsewaGateway builds the classic form post eSewa's epay endpoint expects.
type EsewaGateway struct {
	gatewayURL    string
	merchantCode  string
	publicBaseURL string
}

// NewEsewaGateway creates a new instance of EsewaGateway.
func NewEsewaGateway(gatewayURL, merchantCode, publicBaseURL string) *EsewaGateway {
	return &EsewaGateway{
		gatewayURL:    gatewayURL,
		merchantCode:  merchantCode,
		publicBaseURL: publicBaseURL,
	}
}

// Handoff implements ports.Gateway.
func (g *EsewaGateway) Handoff(ctx context.Context, orderID string, amount decimal.Decimal) (*domain.Handoff, error) {
	if orderID == "" {
		return nil, errors.New("esewa: order id is required")
	}
	if !amount.IsPositive() {
		return nil, errors.New("esewa: amount must be positive")
	}

	// Service, delivery and tax charges are already folded into the order total.
	serviceCharge, deliveryCharge, tax := decimal.Zero, decimal.Zero, decimal.Zero
	total := amount.Add(serviceCharge).Add(deliveryCharge).Add(tax)

	return &domain.Handoff{
		OrderID:  orderID,
		Provider: domain.ProviderEsewa,
		Kind:     domain.HandoffFormPost,
		URL:      g.gatewayURL,
		Amount:   amount,
		Fields: []domain.FormField{
			{Name: "amt", Value: money(amount)},
			{Name: "psc", Value: money(serviceCharge)},
			{Name: "pdc", Value: money(deliveryCharge)},
			{Name: "txAmt", Value: money(tax)},
			{Name: "tAmt", Value: money(total)},
			{Name: "pid", Value: orderID},
			{Name: "scd", Value: g.merchantCode},
			{Name: "su", Value: domain.PageURL(g.publicBaseURL, domain.SuccessPath, orderID)},
			{Name: "fu", Value: domain.PageURL(g.publicBaseURL, domain.FailurePath, orderID)},
		},
	}, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
