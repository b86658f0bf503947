package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"storefront-checkout/internal/core/auth"
	"storefront-checkout/internal/core/httpclient"
	"storefront-checkout/internal/features/addresses/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAddressAPI is a mock implementation of ports.AddressAPI.
type MockAddressAPI struct {
	mock.Mock
}

func (m *MockAddressAPI) List(ctx context.Context, token string) ([]domain.ShippingAddress, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingAddress), args.Error(1)
}

func (m *MockAddressAPI) Create(ctx context.Context, token string, address domain.ShippingAddress) error {
	return m.Called(ctx, token, address).Error(0)
}

func (m *MockAddressAPI) Delete(ctx context.Context, token string, id int64) error {
	return m.Called(ctx, token, id).Error(0)
}

var customer = auth.Principal{Token: "tok", Profile: &auth.Profile{ID: "u1"}}

func newAddress(id int64) domain.ShippingAddress {
	return domain.ShippingAddress{ID: id, Street: "Thamel Marg", City: "Kathmandu", State: "Bagmati", Country: "Nepal"}
}

func TestAddressService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := new(MockAddressAPI)
		svc := NewAddressService(api)

		input := newAddress(0)
		api.On("List", ctx, "tok").Return([]domain.ShippingAddress{newAddress(1)}, nil).Once()
		api.On("Create", ctx, "tok", input).Return(nil).Once()
		api.On("List", ctx, "tok").Return([]domain.ShippingAddress{newAddress(1), newAddress(2)}, nil).Once()

		list, err := svc.Create(ctx, customer, input)
		require.NoError(t, err)
		assert.Len(t, list, 2)
		api.AssertExpectations(t)
	})

	t.Run("LimitReached", func(t *testing.T) {
		api := new(MockAddressAPI)
		svc := NewAddressService(api)

		full := []domain.ShippingAddress{newAddress(1), newAddress(2), newAddress(3), newAddress(4)}
		api.On("List", ctx, "tok").Return(full, nil).Once()

		_, err := svc.Create(ctx, customer, newAddress(0))
		assert.ErrorIs(t, err, ErrAddressLimitReached)
		api.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InvalidInputNeverReachesServer", func(t *testing.T) {
		api := new(MockAddressAPI)
		svc := NewAddressService(api)

		_, err := svc.Create(ctx, customer, domain.ShippingAddress{City: "Kathmandu"})
		assert.ErrorIs(t, err, domain.ErrInvalidAddress)
		api.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("ServerError", func(t *testing.T) {
		api := new(MockAddressAPI)
		svc := NewAddressService(api)

		api.On("List", ctx, "tok").Return([]domain.ShippingAddress{}, nil).Once()
		api.On("Create", ctx, "tok", mock.Anything).Return(errors.New("boom")).Once()

		_, err := svc.Create(ctx, customer, newAddress(0))
		assert.Error(t, err)
		api.AssertExpectations(t)
	})

	t.Run("Anonymous", func(t *testing.T) {
		svc := NewAddressService(new(MockAddressAPI))
		_, err := svc.Create(ctx, auth.Principal{}, newAddress(0))
		assert.ErrorIs(t, err, auth.ErrLoginRequired)
	})
}

func TestAddressService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := new(MockAddressAPI)
		svc := NewAddressService(api)

		api.On("Delete", ctx, "tok", int64(2)).Return(nil).Once()
		api.On("List", ctx, "tok").Return([]domain.ShippingAddress{newAddress(1)}, nil).Once()

		list, err := svc.Delete(ctx, customer, 2)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		api.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		api := new(MockAddressAPI)
		svc := NewAddressService(api)

		api.On("Delete", ctx, "tok", int64(9)).Return(&httpclient.APIError{Status: http.StatusNotFound}).Once()

		_, err := svc.Delete(ctx, customer, 9)
		assert.ErrorIs(t, err, ErrAddressNotFound)
	})
}

func TestAddressService_Get(t *testing.T) {
	ctx := context.Background()
	api := new(MockAddressAPI)
	svc := NewAddressService(api)

	api.On("List", ctx, "tok").Return([]domain.ShippingAddress{newAddress(1), newAddress(2)}, nil)

	got, err := svc.Get(ctx, customer, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)

	_, err = svc.Get(ctx, customer, 5)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

// slowAddressAPI holds addresses in memory and widens the gap between list and create.
type slowAddressAPI struct {
	mu    sync.Mutex
	items []domain.ShippingAddress
}

func (a *slowAddressAPI) List(ctx context.Context, token string) ([]domain.ShippingAddress, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]domain.ShippingAddress(nil), a.items...), nil
}

func (a *slowAddressAPI) Create(ctx context.Context, token string, address domain.ShippingAddress) error {
	time.Sleep(10 * time.Millisecond)
	a.mu.Lock()
	defer a.mu.Unlock()
	address.ID = int64(len(a.items) + 1)
	a.items = append(a.items, address)
	return nil
}

func (a *slowAddressAPI) Delete(ctx context.Context, token string, id int64) error {
	return nil
}

func TestAddressService_Create_ConcurrentRespectsLimit(t *testing.T) {
	api := &slowAddressAPI{items: []domain.ShippingAddress{newAddress(1), newAddress(2), newAddress(3)}}
	svc := NewAddressService(api)

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(context.Background(), customer, newAddress(0))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var limited int
	for err := range errs {
		if errors.Is(err, ErrAddressLimitReached) {
			limited++
		} else {
			assert.NoError(t, err)
		}
	}

	list, err := svc.List(context.Background(), customer)
	require.NoError(t, err)
	assert.Len(t, list, domain.MaxAddresses)
	assert.Equal(t, 4, limited)
}
