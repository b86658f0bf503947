package ports

import (
	"context"
	"time"

	"storefront-checkout/internal/core/auth"
	addresses "storefront-checkout/internal/features/addresses/domain"
	cart "storefront-checkout/internal/features/cart/domain"
	"storefront-checkout/internal/features/checkout/domain"
	payment "storefront-checkout/internal/features/payment/domain"

	"github.com/shopspring/decimal"
)

// SessionRepository stores checkout sessions.
type SessionRepository interface {
	Save(ctx context.Context, state *domain.CheckoutState) error
	// Get returns nil, nil when the session does not exist or has expired.
	Get(ctx context.Context, id string) (*domain.CheckoutState, error)
	Delete(ctx context.Context, id string) error
}

// OrderAPI places orders on the storefront API.
type OrderAPI interface {
	// CreateOrder posts the order and returns the id the server assigned.
	CreateOrder(ctx context.Context, token string, order domain.OrderRequest) (string, error)
}

// AddressBook resolves the customer's saved addresses.
type AddressBook interface {
	Get(ctx context.Context, p auth.Principal, id int64) (*addresses.ShippingAddress, error)
}

// Cart reads the customer's cart.
type Cart interface {
	Get(ctx context.Context, p auth.Principal) (*cart.CartSnapshot, error)
	Refresh(ctx context.Context, p auth.Principal) (*cart.CartSnapshot, error)
	// Invalidate drops the held snapshot so the next read re-fetches.
	Invalidate(p auth.Principal)
}

// PaymentHandoff starts the payment for a placed order.
type PaymentHandoff interface {
	Begin(ctx context.Context, userID, orderID, methodID string, amount decimal.Decimal) (*payment.Handoff, error)
}

// SubmitLock guards order placement across every instance sharing the session store.
type SubmitLock interface {
	// TryLock takes key for at most ttl. ok is false when another holder has it.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, ok bool, err error)
}
