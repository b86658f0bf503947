package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-checkout/internal/core/cache"
	"storefront-checkout/internal/features/payment/domain"
)

const handoffKeyPrefix = "handoff:"

// RedisHandoffRepository implements ports.HandoffRepository on top of the cache.
type RedisHandoffRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisHandoffRepository creates a new RedisHandoffRepository.
func NewRedisHandoffRepository(c cache.Cache, ttl time.Duration) *RedisHandoffRepository {
	return &RedisHandoffRepository{cache: c, ttl: ttl}
}

// Save stores the handoff under its order id.
func (r *RedisHandoffRepository) Save(ctx context.Context, handoff *domain.Handoff) error {
	data, err := json.Marshal(handoff)
	if err != nil {
		return fmt.Errorf("failed to marshal handoff: %w", err)
	}

	if err := r.cache.Set(ctx, handoffKeyPrefix+handoff.OrderID, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save handoff to cache: %w", err)
	}
	return nil
}

// Get retrieves the handoff for orderID.
func (r *RedisHandoffRepository) Get(ctx context.Context, orderID string) (*domain.Handoff, error) {
	data, err := r.cache.Get(ctx, handoffKeyPrefix+orderID)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get handoff from cache: %w", err)
	}

	var handoff domain.Handoff
	if err := json.Unmarshal(data, &handoff); err != nil {
		return nil, fmt.Errorf("failed to unmarshal handoff: %w", err)
	}
	return &handoff, nil
}
