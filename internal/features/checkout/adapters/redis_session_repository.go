package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront-checkout/internal/core/cache"
	"storefront-checkout/internal/features/checkout/domain"
)

const sessionKeyPrefix = "checkout:"

// RedisSessionRepository implements ports.SessionRepository using the cache.
// Every save refreshes the idle TTL.
type RedisSessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisSessionRepository creates a new RedisSessionRepository.
func NewRedisSessionRepository(c cache.Cache, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{cache: c, ttl: ttl}
}

// Save stores the session in the cache.
func (r *RedisSessionRepository) Save(ctx context.Context, state *domain.CheckoutState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}

	if err := r.cache.Set(ctx, sessionKeyPrefix+state.ID, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save checkout session to cache: %w", err)
	}
	return nil
}

// Get retrieves the session from the cache.
func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*domain.CheckoutState, error) {
	data, err := r.cache.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checkout session from cache: %w", err)
	}

	var state domain.CheckoutState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkout session: %w", err)
	}
	return &state, nil
}

// Delete removes the session from the cache.
func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, sessionKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete checkout session from cache: %w", err)
	}
	return nil
}
