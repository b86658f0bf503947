package service

import (
	"context"
	"errors"
	"testing"

	"storefront-checkout/internal/features/payment/adapters"
	"storefront-checkout/internal/features/payment/domain"
	"storefront-checkout/internal/features/payment/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockHandoffRepository is a mock implementation of ports.HandoffRepository.
type MockHandoffRepository struct {
	mock.Mock
}

func (m *MockHandoffRepository) Save(ctx context.Context, handoff *domain.Handoff) error {
	return m.Called(ctx, handoff).Error(0)
}

func (m *MockHandoffRepository) Get(ctx context.Context, orderID string) (*domain.Handoff, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Handoff), args.Error(1)
}

func gateways() map[domain.Provider]ports.Gateway {
	return map[domain.Provider]ports.Gateway{
		domain.ProviderEsewa:  adapters.NewEsewaGateway("https://esewa.test/epay/main", "EPAYTEST", "https://shop.test"),
		domain.ProviderKhalti: adapters.NewKhaltiStubGateway("https://shop.test"),
		domain.ProviderCOD:    adapters.NewCashOnDeliveryGateway("https://shop.test"),
	}
}

func TestHandoffService_Begin(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(900)

	tests := []struct {
		method   string
		provider domain.Provider
		kind     domain.HandoffKind
	}{
		{"esewa", domain.ProviderEsewa, domain.HandoffFormPost},
		{"khalti", domain.ProviderKhalti, domain.HandoffRedirect},
		{"cash-on-delivery", domain.ProviderCOD, domain.HandoffRedirect},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			repo := new(MockHandoffRepository)
			repo.On("Save", ctx, mock.AnythingOfType("*domain.Handoff")).Return(nil).Once()

			svc := NewHandoffService(repo, gateways())
			h, err := svc.Begin(ctx, "u1", "42", tt.method, amount)
			require.NoError(t, err)

			assert.Equal(t, tt.provider, h.Provider)
			assert.Equal(t, tt.kind, h.Kind)
			assert.Equal(t, "u1", h.UserID)
			assert.Equal(t, "42", h.OrderID)
			repo.AssertExpectations(t)
		})
	}
}

func TestHandoffService_Begin_UnknownMethod(t *testing.T) {
	repo := new(MockHandoffRepository)
	svc := NewHandoffService(repo, gateways())

	_, err := svc.Begin(context.Background(), "u1", "42", "paypal", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrUnknownMethod)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestHandoffService_Begin_FallsBackToCOD(t *testing.T) {
	ctx := context.Background()
	repo := new(MockHandoffRepository)
	repo.On("Save", ctx, mock.Anything).Return(nil)

	svc := NewHandoffService(repo, map[domain.Provider]ports.Gateway{
		domain.ProviderCOD: adapters.NewCashOnDeliveryGateway(""),
	})

	h, err := svc.Begin(ctx, "u1", "42", "khalti", decimal.NewFromInt(1))
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderCOD, h.Provider)
	assert.Equal(t, domain.HandoffRedirect, h.Kind)
}

func TestHandoffService_Begin_SaveError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockHandoffRepository)
	repo.On("Save", ctx, mock.Anything).Return(errors.New("redis down"))

	svc := NewHandoffService(repo, gateways())
	_, err := svc.Begin(ctx, "u1", "42", "esewa", decimal.NewFromInt(1))
	assert.Error(t, err)
}

func TestHandoffService_Get(t *testing.T) {
	ctx := context.Background()
	repo := new(MockHandoffRepository)
	repo.On("Get", ctx, "42").Return(&domain.Handoff{OrderID: "42", UserID: "u1"}, nil)
	repo.On("Get", ctx, "43").Return(nil, nil)

	svc := NewHandoffService(repo, gateways())

	h, err := svc.Get(ctx, "u1", "42")
	require.NoError(t, err)
	assert.Equal(t, "42", h.OrderID)

	_, err = svc.Get(ctx, "u2", "42")
	assert.ErrorIs(t, err, ErrHandoffNotFound)

	_, err = svc.Get(ctx, "u1", "43")
	assert.ErrorIs(t, err, ErrHandoffNotFound)
}
