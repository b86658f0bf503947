package domain

import (
	"strings"
	"time"

	addresses "storefront-checkout/internal/features/addresses/domain"
)

// RecipientType is who receives the order.
type RecipientType string

const (
	RecipientSelf      RecipientType = "self"
	RecipientGift      RecipientType = "gift"
	RecipientAnonymous RecipientType = "anonymous"
)

// Valid reports whether t is a known recipient type.
func (t RecipientType) Valid() bool {
	switch t {
	case RecipientSelf, RecipientGift, RecipientAnonymous:
		return true
	}
	return false
}

// Recipient describes who the order is delivered to.
// Gift and anonymous recipients need a name and phone; self needs nothing.
type Recipient struct {
	Type    RecipientType `json:"type"`
	Name    string        `json:"name,omitempty"`
	Phone   string        `json:"phone,omitempty"`
	Message string        `json:"message,omitempty"`
	Photos  []string      `json:"photos,omitempty"`
}

// DeliverySelection is the chosen courier plus optional extras.
type DeliverySelection struct {
	Partner      *DeliveryPartner `json:"partner,omitempty"`
	Instructions string           `json:"instructions,omitempty"`
	// UserID is the partner side account id, required when Partner.RequiresUserID.
	UserID string `json:"user_id,omitempty"`
}

// CheckoutState is the state of one checkout session.
type CheckoutState struct {
	ID            string                     `json:"id"`
	UserID        string                     `json:"user_id"`
	CurrentStep   Step                       `json:"current_step"`
	Address       *addresses.ShippingAddress `json:"address,omitempty"`
	Recipient     Recipient                  `json:"recipient"`
	Delivery      DeliverySelection          `json:"delivery"`
	PaymentMethod string                     `json:"payment_method,omitempty"`
	PromoCode     string                     `json:"promo_code,omitempty"`
	Submitting    bool                       `json:"submitting"`
	CreatedAt     time.Time                  `json:"created_at"`
	UpdatedAt     time.Time                  `json:"updated_at"`
}

// NewCheckoutState returns a fresh session positioned on the first step.
func NewCheckoutState(id, userID string, now time.Time) *CheckoutState {
	return &CheckoutState{
		ID:          id,
		UserID:      userID,
		CurrentStep: StepAddress,
		Recipient:   Recipient{Type: RecipientSelf},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsStepComplete reports whether step's completion predicate holds for state.
func IsStepComplete(step Step, state *CheckoutState) bool {
	if state == nil {
		return false
	}

	switch step {
	case StepAddress:
		return state.Address != nil && state.Address.ID > 0 && state.Address.HasRequiredFields()
	case StepRecipient:
		return recipientComplete(state.Recipient)
	case StepDelivery:
		return deliveryComplete(state.Delivery)
	case StepPayment:
		return strings.TrimSpace(state.PaymentMethod) != ""
	case StepReview:
		return CanProceedToStep(StepReview, state)
	}
	return false
}

func recipientComplete(r Recipient) bool {
	switch r.Type {
	case RecipientSelf:
		return true
	case RecipientGift, RecipientAnonymous:
		return strings.TrimSpace(r.Name) != "" && strings.TrimSpace(r.Phone) != ""
	}
	return false
}

func deliveryComplete(d DeliverySelection) bool {
	if d.Partner == nil {
		return false
	}
	if d.Partner.RequiresUserID {
		return strings.TrimSpace(d.UserID) != ""
	}
	return true
}

// CanProceedToStep reports whether every step before step is complete.
func CanProceedToStep(step Step, state *CheckoutState) bool {
	if !step.Valid() || state == nil {
		return false
	}
	for s := StepAddress; s < step; s++ {
		if !IsStepComplete(s, state) {
			return false
		}
	}
	return true
}

// GoToStep jumps to step when its prerequisites hold, reporting whether it moved.
func (s *CheckoutState) GoToStep(step Step) bool {
	if !CanProceedToStep(step, s) {
		return false
	}
	moved := s.CurrentStep != step
	s.CurrentStep = step
	return moved
}

// NextStep advances one step when the current one is complete. It is a no-op otherwise.
func (s *CheckoutState) NextStep() bool {
	if s.CurrentStep >= StepReview || !IsStepComplete(s.CurrentStep, s) {
		return false
	}
	s.CurrentStep++
	return true
}

// PrevStep moves back one step unless already on the first.
func (s *CheckoutState) PrevStep() bool {
	if s.CurrentStep <= StepAddress {
		return false
	}
	s.CurrentStep--
	return true
}

// Progress returns the completion of every step keyed by step.
func (s *CheckoutState) Progress() map[Step]bool {
	out := make(map[Step]bool, len(stepNames))
	for _, step := range Steps() {
		out[step] = IsStepComplete(step, s)
	}
	return out
}
