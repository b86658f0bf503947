package service

import (
	"context"
	"errors"
	"fmt"

	"storefront-checkout/internal/core/logger"
	"storefront-checkout/internal/features/payment/domain"
	"storefront-checkout/internal/features/payment/ports"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrHandoffNotFound is returned when no pending handoff exists for the order.
var ErrHandoffNotFound = errors.New("payment handoff not found")

// HandoffService turns a placed order into the provider specific navigation.
type HandoffService struct {
	gateways map[domain.Provider]ports.Gateway
	repo     ports.HandoffRepository
}

// NewHandoffService creates a new instance of HandoffService.
// Providers without a registered gateway fall back to cash on delivery.
func NewHandoffService(repo ports.HandoffRepository, gateways map[domain.Provider]ports.Gateway) *HandoffService {
	return &HandoffService{gateways: gateways, repo: repo}
}

// Methods returns the payment method catalog.
func (s *HandoffService) Methods() []domain.Method {
	return domain.Methods()
}

// Begin builds and stores the handoff for an order paid with methodID.
func (s *HandoffService) Begin(ctx context.Context, userID, orderID, methodID string, amount decimal.Decimal) (*domain.Handoff, error) {
	method, err := domain.FindMethod(methodID)
	if err != nil {
		return nil, err
	}

	gateway, ok := s.gateways[method.Provider]
	if !ok {
		gateway, ok = s.gateways[domain.ProviderCOD]
	}
	if !ok {
		return nil, fmt.Errorf("no gateway registered for %s", method.Provider)
	}

	handoff, err := gateway.Handoff(ctx, orderID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s handoff: %w", method.Provider, err)
	}
	handoff.UserID = userID

	if err := s.repo.Save(ctx, handoff); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Payment handoff ready",
		zap.String("order_id", orderID),
		zap.String("provider", string(handoff.Provider)),
		zap.String("kind", string(handoff.Kind)),
	)

	return handoff, nil
}

// Get returns the pending handoff for orderID. Handoffs are only visible to the user who placed the order.
func (s *HandoffService) Get(ctx context.Context, userID, orderID string) (*domain.Handoff, error) {
	handoff, err := s.repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if handoff == nil || (handoff.UserID != "" && handoff.UserID != userID) {
		return nil, ErrHandoffNotFound
	}
	return handoff, nil
}
