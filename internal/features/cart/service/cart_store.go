package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"storefront-checkout/internal/core/auth"
	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/core/keylock"
	"storefront-checkout/internal/core/logger"
	"storefront-checkout/internal/features/cart/domain"
	"storefront-checkout/internal/features/cart/ports"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrInvalidQuantity is returned when a quantity below one is requested.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrInvalidProduct is returned when the product id is not positive.
	ErrInvalidProduct = errors.New("product id must be positive")
	// ErrLineNotFound is returned when the server does not know the cart line.
	ErrLineNotFound = errors.New("cart line not found")
)

// DefaultSnapshotTTL is how long a held cart snapshot is served before it is re-read.
const DefaultSnapshotTTL = 30 * time.Second

// cartEntry is the locally held view of one customer's cart.
type cartEntry struct {
	snapshot  *domain.CartSnapshot
	fetchedAt time.Time
	// generation increases with every mutation; fetches started under an older generation are discarded.
	generation uint64
	// refs counts fetches and mutations in flight. An entry is only removed at zero so
	// no caller holds a generation from a forgotten entry.
	refs int
}

// CartStore is the single source of truth for active carts.
// Mutations for one customer run one at a time; the server response always replaces local state.
// Snapshots are held for a short TTL and idle entries are swept.
type CartStore struct {
	api   ports.CartAPI
	locks *keylock.Locker
	sfg   singleflight.Group
	ttl   time.Duration
	now   func() time.Time

	mu        sync.Mutex
	carts     map[string]*cartEntry
	lastSweep time.Time
}

// Option configures a CartStore.
type Option func(*CartStore)

// WithSnapshotTTL sets how long a snapshot is served without re-reading the server.
// A non-positive ttl holds snapshots until they are invalidated.
func WithSnapshotTTL(ttl time.Duration) Option {
	return func(s *CartStore) {
		s.ttl = ttl
	}
}

// NewCartStore creates a CartStore over the remote cart API.
func NewCartStore(api ports.CartAPI, opts ...Option) *CartStore {
	s := &CartStore{
		api:   api,
		locks: keylock.New(),
		ttl:   DefaultSnapshotTTL,
		now:   time.Now,
		carts: make(map[string]*cartEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastSweep = s.now()
	return s
}

// Get returns the held snapshot, fetching it when none is held or it has expired.
func (s *CartStore) Get(ctx context.Context, p auth.Principal) (*domain.CartSnapshot, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}

	if snap, _ := s.current(p.UserID()); snap != nil {
		return snap, nil
	}

	return s.fetch(ctx, p)
}

// Refresh discards the held snapshot and fetches a fresh one.
func (s *CartStore) Refresh(ctx context.Context, p auth.Principal) (*domain.CartSnapshot, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}
	return s.fetch(ctx, p)
}

// Invalidate drops the held snapshot so the next read goes to the server.
func (s *CartStore) Invalidate(p auth.Principal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := p.UserID()
	if e, ok := s.carts[userID]; ok {
		e.snapshot = nil
		e.generation++
		s.forget(userID, e)
	}
}

// AddToCart adds quantity units of productID. An existing line for the product is
// incremented rather than duplicated.
func (s *CartStore) AddToCart(ctx context.Context, p auth.Principal, productID int64, quantity int) (*domain.CartSnapshot, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}
	if productID <= 0 {
		return nil, ErrInvalidProduct
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return s.mutate(ctx, p, "add", func(ctx context.Context) (*domain.CartSnapshot, error) {
		// The held snapshot may predate changes made from another device.
		current, err := s.api.GetCart(ctx, p.Token)
		if err != nil {
			return nil, err
		}

		if line, ok := current.FindByProduct(productID); ok {
			return s.api.UpdateLine(ctx, p.Token, line.ID, line.Quantity+quantity)
		}
		return s.api.AddLine(ctx, p.Token, productID, quantity)
	})
}

// UpdateQuantity sets the quantity of a cart line.
func (s *CartStore) UpdateQuantity(ctx context.Context, p auth.Principal, lineID int64, quantity int) (*domain.CartSnapshot, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	return s.mutate(ctx, p, "update", func(ctx context.Context) (*domain.CartSnapshot, error) {
		return s.api.UpdateLine(ctx, p.Token, lineID, quantity)
	})
}

// DeleteFromCart removes a cart line.
func (s *CartStore) DeleteFromCart(ctx context.Context, p auth.Principal, lineID int64) (*domain.CartSnapshot, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, p, "delete", func(ctx context.Context) (*domain.CartSnapshot, error) {
		return s.api.DeleteLine(ctx, p.Token, lineID)
	})
}

// mutate runs fn with the customer's cart locked. On failure the local snapshot is
// discarded and re-read from the server; the original error is returned.
func (s *CartStore) mutate(ctx context.Context, p auth.Principal, op string, fn func(context.Context) (*domain.CartSnapshot, error)) (*domain.CartSnapshot, error) {
	userID := p.UserID()

	unlock, err := s.locks.Lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	s.acquire(userID)
	defer s.release(userID)
	gen := s.bump(userID)

	snap, err := fn(ctx)
	if ctx.Err() != nil {
		// The caller is gone; whatever the server did, our view is no longer trustworthy.
		s.Invalidate(p)
		return nil, ctx.Err()
	}

	if err != nil {
		logger.FromContext(ctx).Warn("Cart mutation failed, resynchronising",
			zap.String("op", op),
			zap.String("user_id", userID),
			zap.Error(err),
		)

		s.discard(userID, gen)
		if fresh, ferr := s.api.GetCart(ctx, p.Token); ferr == nil {
			s.apply(userID, gen, fresh)
		} else {
			logger.FromContext(ctx).Error("Cart resync failed", zap.String("user_id", userID), zap.Error(ferr))
		}

		if httpclient.IsStatus(err, http.StatusNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrLineNotFound, err)
		}
		return nil, fmt.Errorf("cart %s failed: %w", op, err)
	}

	s.apply(userID, gen, snap)
	return snap, nil
}

// fetch reads the cart from the server, collapsing concurrent reads for the same customer.
// The shared read is detached from any one caller; each caller waits on its own context.
func (s *CartStore) fetch(ctx context.Context, p auth.Principal) (*domain.CartSnapshot, error) {
	userID := p.UserID()
	shared := context.WithoutCancel(ctx)

	ch := s.sfg.DoChan(userID, func() (any, error) {
		gen := s.acquire(userID)
		defer s.release(userID)

		snap, err := s.api.GetCart(shared, p.Token)
		if err != nil {
			return nil, err
		}

		if !s.apply(userID, gen, snap) {
			// A mutation overtook this read; its result is newer.
			if newer, _ := s.current(userID); newer != nil {
				return newer, nil
			}
		}
		return snap, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("failed to fetch cart: %w", res.Err)
		}
		return res.Val.(*domain.CartSnapshot), nil
	}
}

// entry returns the entry for userID, creating it. Callers hold s.mu.
func (s *CartStore) entry(userID string) *cartEntry {
	e, ok := s.carts[userID]
	if !ok {
		e = &cartEntry{}
		s.carts[userID] = e
	}
	return e
}

// fresh reports whether e holds a snapshot that may still be served. Callers hold s.mu.
func (s *CartStore) fresh(e *cartEntry) bool {
	if e.snapshot == nil {
		return false
	}
	return s.ttl <= 0 || s.now().Sub(e.fetchedAt) < s.ttl
}

// forget removes e when nothing is in flight and it holds nothing worth serving. Callers hold s.mu.
func (s *CartStore) forget(userID string, e *cartEntry) {
	if e.refs == 0 && !s.fresh(e) {
		delete(s.carts, userID)
	}
}

// sweep drops idle expired entries, at most once per TTL. Callers hold s.mu.
func (s *CartStore) sweep() {
	if s.ttl <= 0 || s.now().Sub(s.lastSweep) < s.ttl {
		return
	}
	s.lastSweep = s.now()

	for userID, e := range s.carts {
		s.forget(userID, e)
	}
}

func (s *CartStore) current(userID string) (*domain.CartSnapshot, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[userID]
	if !ok {
		return nil, 0
	}
	if !s.fresh(e) {
		return nil, e.generation
	}
	return e.snapshot, e.generation
}

func (s *CartStore) acquire(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(userID)
	e.refs++
	return e.generation
}

func (s *CartStore) release(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.carts[userID]; ok {
		e.refs--
		s.forget(userID, e)
	}
}

func (s *CartStore) bump(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.entry(userID)
	e.generation++
	return e.generation
}

// apply stores snap if no newer generation has started. It reports whether snap was stored.
func (s *CartStore) apply(userID string, gen uint64, snap *domain.CartSnapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	defer s.sweep()

	e, ok := s.carts[userID]
	if !ok || e.generation != gen {
		return false
	}
	e.snapshot = snap
	e.fetchedAt = s.now()
	return true
}

func (s *CartStore) discard(userID string, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.carts[userID]; ok && e.generation == gen {
		e.snapshot = nil
	}
}
