package ports

import (
	"context"

	"storefront-checkout/internal/features/payment/domain"

	"github.com/shopspring/decimal"
)

// Gateway builds the handoff for one payment provider.
type Gateway interface {
	Handoff(ctx context.Context, orderID string, amount decimal.Decimal) (*domain.Handoff, error)
}

// HandoffRepository keeps pending handoffs until the browser picks them up.
type HandoffRepository interface {
	Save(ctx context.Context, handoff *domain.Handoff) error
	// Get returns nil, nil when no handoff is stored for orderID.
	Get(ctx context.Context, orderID string) (*domain.Handoff, error)
}
