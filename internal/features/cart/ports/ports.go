package ports

import (
	"context"

	"storefront-checkout/internal/features/cart/domain"
)

// CartAPI is the secondary port to the remote cart endpoints.
// Every mutation returns the full server snapshot.
type CartAPI interface {
	GetCart(ctx context.Context, token string) (*domain.CartSnapshot, error)
	AddLine(ctx context.Context, token string, productID int64, quantity int) (*domain.CartSnapshot, error)
	UpdateLine(ctx context.Context, token string, lineID int64, quantity int) (*domain.CartSnapshot, error)
	DeleteLine(ctx context.Context, token string, lineID int64) (*domain.CartSnapshot, error)
}
