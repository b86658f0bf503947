package ports

import (
	"context"

	"storefront-checkout/internal/features/addresses/domain"
)

// AddressAPI is the secondary port to the remote shipping-address endpoints.
type AddressAPI interface {
	List(ctx context.Context, token string) ([]domain.ShippingAddress, error)
	Create(ctx context.Context, token string, address domain.ShippingAddress) error
	Delete(ctx context.Context, token string, id int64) error
}
