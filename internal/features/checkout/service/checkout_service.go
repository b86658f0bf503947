package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront-checkout/internal/core/auth"
	"storefront-checkout/internal/core/keylock"
	"storefront-checkout/internal/core/logger"
	cart "storefront-checkout/internal/features/cart/domain"
	"storefront-checkout/internal/features/checkout/domain"
	"storefront-checkout/internal/features/checkout/ports"
	payment "storefront-checkout/internal/features/payment/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrSessionNotFound is returned for unknown, expired or foreign sessions.
	ErrSessionNotFound = errors.New("checkout session not found")
	// ErrSubmissionInProgress is returned while the session's order is being placed.
	ErrSubmissionInProgress = errors.New("order submission already in progress")
	// ErrEmptyCart is returned when submitting with nothing in the cart.
	ErrEmptyCart = errors.New("cart is empty")
)

// HandoffError is returned when the order was placed but its payment could not be started.
type HandoffError struct {
	OrderID string
	Err     error
}

func (e *HandoffError) Error() string {
	return fmt.Sprintf("order %s placed but payment could not start: %v", e.OrderID, e.Err)
}

func (e *HandoffError) Unwrap() error {
	return e.Err
}

// Review is everything the review step shows.
type Review struct {
	State    *domain.CheckoutState   `json:"state"`
	Cart     *cart.CartSnapshot      `json:"cart"`
	Totals   domain.Totals           `json:"totals"`
	Progress map[domain.Step]bool    `json:"progress"`
	Problems *domain.ValidationError `json:"problems,omitempty"`
}

// SubmitResult is returned once the order is placed and the payment handoff is ready.
type SubmitResult struct {
	OrderID string           `json:"order_id"`
	Totals  domain.Totals    `json:"totals"`
	Handoff *payment.Handoff `json:"handoff"`
}

// submitLockTTL bounds how long a crashed instance can block a session's submission.
const submitLockTTL = 2 * time.Minute

// CheckoutService owns checkout sessions. Writes to one session are serialised within
// the process; submission is also exclusive across instances when a SubmitLock is set.
type CheckoutService struct {
	sessions   ports.SessionRepository
	orders     ports.OrderAPI
	addresses  ports.AddressBook
	cart       ports.Cart
	payments   ports.PaymentHandoff
	locks      *keylock.Locker
	submitLock ports.SubmitLock

	now   func() time.Time
	newID func() string
}

// NewCheckoutService creates a new instance of CheckoutService.
func NewCheckoutService(
	sessions ports.SessionRepository,
	orders ports.OrderAPI,
	addresses ports.AddressBook,
	cart ports.Cart,
	payments ports.PaymentHandoff,
	opts ...Option,
) *CheckoutService {
	s := &CheckoutService{
		sessions:  sessions,
		orders:    orders,
		addresses: addresses,
		cart:      cart,
		payments:  payments,
		locks:     keylock.New(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Option configures a CheckoutService.
type Option func(*CheckoutService)

// WithSubmitLock makes submission exclusive across every instance sharing l.
func WithSubmitLock(l ports.SubmitLock) Option {
	return func(s *CheckoutService) {
		s.submitLock = l
	}
}

// Create starts a fresh session for the customer on the address step.
func (s *CheckoutService) Create(ctx context.Context, p auth.Principal) (*domain.CheckoutState, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}

	state := domain.NewCheckoutState(s.newID(), p.UserID(), s.now())
	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("Checkout session created", zap.String("session_id", state.ID), zap.String("user_id", state.UserID))
	return state, nil
}

// Get returns the session.
func (s *CheckoutService) Get(ctx context.Context, p auth.Principal, id string) (*domain.CheckoutState, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}
	return s.load(ctx, p, id)
}

// Discard drops the session, as when the customer leaves checkout.
func (s *CheckoutService) Discard(ctx context.Context, p auth.Principal, id string) error {
	if err := p.Require(); err != nil {
		return err
	}

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := s.load(ctx, p, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}

// SetAddress selects a saved address. An addressID of 0 clears the selection.
func (s *CheckoutService) SetAddress(ctx context.Context, p auth.Principal, id string, addressID int64) (*domain.CheckoutState, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}

	if addressID == 0 {
		return s.update(ctx, p, id, func(st *domain.CheckoutState) error {
			st.Address = nil
			return nil
		})
	}

	address, err := s.addresses.Get(ctx, p, addressID)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, p, id, func(st *domain.CheckoutState) error {
		st.Address = address
		return nil
	})
}

// SetRecipient replaces the recipient.
func (s *CheckoutService) SetRecipient(ctx context.Context, p auth.Principal, id string, r domain.Recipient) (*domain.CheckoutState, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	if err := domain.ValidateRecipient(r); err != nil {
		return nil, err
	}

	return s.update(ctx, p, id, func(st *domain.CheckoutState) error {
		st.Recipient = r
		return nil
	})
}

// DeliveryInput is the delivery sub-form. A nil PartnerID clears the partner.
type DeliveryInput struct {
	PartnerID    *int   `json:"partner_id"`
	Instructions string `json:"instructions"`
	UserID       string `json:"user_id"`
}

// SetDelivery replaces the delivery selection. The partner is resolved from the catalog.
func (s *CheckoutService) SetDelivery(ctx context.Context, p auth.Principal, id string, in DeliveryInput) (*domain.CheckoutState, error) {
	selection := domain.DeliverySelection{
		Instructions: strings.TrimSpace(in.Instructions),
		UserID:       strings.TrimSpace(in.UserID),
	}

	if in.PartnerID != nil {
		partner, err := domain.FindDeliveryPartner(*in.PartnerID)
		if err != nil {
			return nil, err
		}
		selection.Partner = &partner
	}

	return s.update(ctx, p, id, func(st *domain.CheckoutState) error {
		st.Delivery = selection
		return nil
	})
}

// SetPaymentMethod selects a payment method from the catalog. An empty id clears it.
func (s *CheckoutService) SetPaymentMethod(ctx context.Context, p auth.Principal, id, methodID string) (*domain.CheckoutState, error) {
	methodID = strings.TrimSpace(methodID)
	if err := domain.ValidatePaymentMethod(methodID); err != nil {
		return nil, err
	}

	return s.update(ctx, p, id, func(st *domain.CheckoutState) error {
		st.PaymentMethod = methodID
		return nil
	})
}

// GoToStep jumps to step when every earlier step is complete.
func (s *CheckoutService) GoToStep(ctx context.Context, p auth.Principal, id string, step domain.Step) (*domain.CheckoutState, bool, error) {
	return s.navigate(ctx, p, id, func(st *domain.CheckoutState) bool { return st.GoToStep(step) })
}

// NextStep advances when the current step is complete.
func (s *CheckoutService) NextStep(ctx context.Context, p auth.Principal, id string) (*domain.CheckoutState, bool, error) {
	return s.navigate(ctx, p, id, (*domain.CheckoutState).NextStep)
}

// PrevStep moves back one step.
func (s *CheckoutService) PrevStep(ctx context.Context, p auth.Principal, id string) (*domain.CheckoutState, bool, error) {
	return s.navigate(ctx, p, id, (*domain.CheckoutState).PrevStep)
}

func (s *CheckoutService) navigate(ctx context.Context, p auth.Principal, id string, move func(*domain.CheckoutState) bool) (*domain.CheckoutState, bool, error) {
	var moved bool
	state, err := s.update(ctx, p, id, func(st *domain.CheckoutState) error {
		moved = move(st)
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return state, moved, nil
}

// ApplyPromo stores code on the session. An unknown code clears any applied promo
// and returns ErrUnknownPromo.
func (s *CheckoutService) ApplyPromo(ctx context.Context, p auth.Principal, id, code string) (*domain.Totals, error) {
	promo, lookupErr := domain.LookupPromo(code)

	state, err := s.update(ctx, p, id, func(st *domain.CheckoutState) error {
		if lookupErr != nil {
			st.PromoCode = ""
			return nil
		}
		st.PromoCode = promo.Code
		return nil
	})
	if err != nil {
		return nil, err
	}
	if lookupErr != nil {
		return nil, lookupErr
	}

	return s.totals(ctx, p, state)
}

// ClearPromo removes any applied promo.
func (s *CheckoutService) ClearPromo(ctx context.Context, p auth.Principal, id string) (*domain.Totals, error) {
	state, err := s.update(ctx, p, id, func(st *domain.CheckoutState) error {
		st.PromoCode = ""
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.totals(ctx, p, state)
}

func (s *CheckoutService) totals(ctx context.Context, p auth.Principal, state *domain.CheckoutState) (*domain.Totals, error) {
	snap, err := s.cart.Get(ctx, p)
	if err != nil {
		return nil, err
	}
	t := domain.ComputeTotals(snap.Subtotal(), state.PromoCode)
	return &t, nil
}

// Review returns the session with the cart, totals and outstanding problems.
func (s *CheckoutService) Review(ctx context.Context, p auth.Principal, id string) (*Review, error) {
	state, err := s.Get(ctx, p, id)
	if err != nil {
		return nil, err
	}

	snap, err := s.cart.Get(ctx, p)
	if err != nil {
		return nil, err
	}

	review := &Review{
		State:    state,
		Cart:     snap,
		Totals:   domain.ComputeTotals(snap.Subtotal(), state.PromoCode),
		Progress: state.Progress(),
	}

	var verr *domain.ValidationError
	if errors.As(domain.ValidateForSubmit(state), &verr) {
		review.Problems = verr
	}
	return review, nil
}

// Submit validates the session, places the order and starts the payment handoff.
// A failure before the order exists leaves the session intact for a retry.
func (s *CheckoutService) Submit(ctx context.Context, p auth.Principal, id string) (*SubmitResult, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}

	release, err := s.claimSubmission(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	state, err := s.update(ctx, p, id, func(st *domain.CheckoutState) error {
		if err := domain.ValidateForSubmit(st); err != nil {
			return err
		}
		st.Submitting = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx).With(zap.String("session_id", state.ID), zap.String("user_id", state.UserID))

	result, err := s.place(ctx, p, state)
	if err != nil {
		var handoffErr *HandoffError
		if errors.As(err, &handoffErr) {
			log.Error("Payment handoff failed after order was placed", zap.String("order_id", handoffErr.OrderID), zap.Error(err))
			s.finish(ctx, p, state.ID)
			return nil, err
		}

		log.Error("Order submission failed", zap.Error(err))
		s.release(ctx, p, state.ID)
		return nil, err
	}

	log.Info("Order placed", zap.String("order_id", result.OrderID), zap.String("total", result.Totals.Total.StringFixed(2)))
	s.finish(ctx, p, state.ID)
	return result, nil
}

func (s *CheckoutService) place(ctx context.Context, p auth.Principal, state *domain.CheckoutState) (*SubmitResult, error) {
	snap, err := s.cart.Refresh(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if snap.IsEmpty() {
		return nil, ErrEmptyCart
	}

	totals := domain.ComputeTotals(snap.Subtotal(), state.PromoCode)
	order := domain.BuildOrder(state, snap, p.Profile.FullName, totals)
	if state.Recipient.Type == domain.RecipientSelf {
		order.Recipient.Name = p.Profile.FullName
		order.Recipient.Phone = p.Profile.Phone
	}

	orderID, err := s.orders.CreateOrder(ctx, p.Token, order)
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	handoff, err := s.payments.Begin(ctx, p.UserID(), orderID, state.PaymentMethod, totals.Total)
	if err != nil {
		return nil, &HandoffError{OrderID: orderID, Err: err}
	}

	return &SubmitResult{OrderID: orderID, Totals: totals, Handoff: handoff}, nil
}

// claimSubmission takes the cross-instance submit lock for the session, if one is configured.
func (s *CheckoutService) claimSubmission(ctx context.Context, id string) (func(), error) {
	if s.submitLock == nil {
		return func() {}, nil
	}

	unlock, ok, err := s.submitLock.TryLock(ctx, "submit:"+id, submitLockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to claim submission: %w", err)
	}
	if !ok {
		return nil, ErrSubmissionInProgress
	}

	return func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			logger.FromContext(ctx).Warn("Failed to release submit lock", zap.String("session_id", id), zap.Error(err))
		}
	}, nil
}

// finish discards a session whose order exists. It runs even if the caller has gone away.
func (s *CheckoutService) finish(ctx context.Context, p auth.Principal, id string) {
	ctx = context.WithoutCancel(ctx)
	s.cart.Invalidate(p)
	if err := s.sessions.Delete(ctx, id); err != nil {
		logger.FromContext(ctx).Warn("Failed to discard checkout session", zap.String("session_id", id), zap.Error(err))
	}
}

// release clears the submitting flag so the customer may retry.
func (s *CheckoutService) release(ctx context.Context, p auth.Principal, id string) {
	ctx = context.WithoutCancel(ctx)

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return
	}
	defer unlock()

	state, err := s.load(ctx, p, id)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to reload checkout session", zap.String("session_id", id), zap.Error(err))
		return
	}
	state.Submitting = false
	state.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, state); err != nil {
		logger.FromContext(ctx).Warn("Failed to reset checkout session", zap.String("session_id", id), zap.Error(err))
	}
}

// update applies fn to the session under its lock and saves the result.
func (s *CheckoutService) update(ctx context.Context, p auth.Principal, id string, fn func(*domain.CheckoutState) error) (*domain.CheckoutState, error) {
	if err := p.Require(); err != nil {
		return nil, err
	}

	unlock, err := s.locks.Lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	state, err := s.load(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if state.Submitting {
		return nil, ErrSubmissionInProgress
	}

	if err := fn(state); err != nil {
		return nil, err
	}

	state.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *CheckoutService) load(ctx context.Context, p auth.Principal, id string) (*domain.CheckoutState, error) {
	state, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if state == nil || state.UserID != p.UserID() {
		return nil, ErrSessionNotFound
	}
	return state, nil
}

// DeliveryPartners returns the delivery partner catalog.
func (s *CheckoutService) DeliveryPartners() []domain.DeliveryPartner {
	return domain.DeliveryPartners()
}
