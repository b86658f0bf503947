package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"storefront-checkout/internal/core/auth"
	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/core/keylock"
	"storefront-checkout/internal/core/logger"
	"storefront-checkout/internal/features/addresses/domain"
	"storefront-checkout/internal/features/addresses/ports"

	"go.uber.org/zap"
)

var (
	// ErrAddressLimitReached is returned when the customer already has MaxAddresses saved.
	ErrAddressLimitReached = fmt.Errorf("you can save at most %d addresses", domain.MaxAddresses)
	// ErrAddressNotFound is returned when the address id is unknown.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressService manages the customer's saved shipping addresses. The server list is
// authoritative; every mutation is followed by a fresh read. Creates for one customer
// run one at a time so the address limit holds within the process.
type AddressService struct {
	api   ports.AddressAPI
	locks *keylock.Locker
}

// NewAddressService creates a new instance of AddressService.
func NewAddressService(api ports.AddressAPI) *AddressService {
	return &AddressService{api: api, locks: keylock.New()}
}

// List returns the saved addresses.
func (s *AddressService) List(ctx context.Context, p auth.Principal) ([]domain.ShippingAddress, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}
	return s.api.List(ctx, p.Token)
}

// Get returns the saved address with id.
func (s *AddressService) Get(ctx context.Context, p auth.Principal, id int64) (*domain.ShippingAddress, error) {
	list, err := s.List(ctx, p)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrAddressNotFound
}

// Create validates and saves input, then returns the refreshed list.
func (s *AddressService) Create(ctx context.Context, p auth.Principal, input domain.ShippingAddress) ([]domain.ShippingAddress, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	unlock, err := s.locks.Lock(ctx, p.UserID())
	if err != nil {
		return nil, err
	}
	defer unlock()

	current, err := s.api.List(ctx, p.Token)
	if err != nil {
		return nil, err
	}
	if len(current) >= domain.MaxAddresses {
		return nil, ErrAddressLimitReached
	}

	if err := s.api.Create(ctx, p.Token, input); err != nil {
		logger.FromContext(ctx).Warn("Address create failed", zap.String("user_id", p.UserID()), zap.Error(err))
		return nil, err
	}

	return s.api.List(ctx, p.Token)
}

// Delete removes the address and returns the refreshed list.
func (s *AddressService) Delete(ctx context.Context, p auth.Principal, id int64) ([]domain.ShippingAddress, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}

	if err := s.api.Delete(ctx, p.Token, id); err != nil {
		if httpclient.IsStatus(err, http.StatusNotFound) {
			return nil, ErrAddressNotFound
		}
		logger.FromContext(ctx).Warn("Address delete failed", zap.String("user_id", p.UserID()), zap.Int64("address_id", id), zap.Error(err))
		return nil, err
	}

	return s.api.List(ctx, p.Token)
}
