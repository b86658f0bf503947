package domain

import (
	"errors"
	"fmt"
	"strings"

	payment "storefront-checkout/internal/features/payment/domain"
)

// ErrInvalidInput is wrapped by every sub-form format error.
var ErrInvalidInput = errors.New("invalid checkout input")

// Well is a named section of the review page.
type Well string

const (
	WellAddress   Well = "address"
	WellRecipient Well = "recipient"
	WellDelivery  Well = "delivery"
	WellPayment   Well = "payment"
)

var wellOrder = []Well{WellAddress, WellRecipient, WellDelivery, WellPayment}

// ValidationError is the aggregate result of validating a session before submission.
type ValidationError struct {
	// Wells maps every failing section to its message.
	Wells map[Well]string `json:"wells"`
	// First is the earliest failing section, where the UI scrolls to.
	First Well `json:"first"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Wells))
	for _, w := range wellOrder {
		if msg, ok := e.Wells[w]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", w, msg))
		}
	}
	return "checkout is incomplete: " + strings.Join(parts, "; ")
}

// ValidateForSubmit checks the whole session. It returns nil or a *ValidationError.
func ValidateForSubmit(s *CheckoutState) error {
	wells := map[Well]string{}

	switch {
	case s.Address == nil || s.Address.ID <= 0:
		wells[WellAddress] = "choose a shipping address"
	case !s.Address.HasRequiredFields():
		wells[WellAddress] = "address is missing " + strings.Join(s.Address.MissingFields(), ", ")
	}

	if !IsStepComplete(StepRecipient, s) {
		if !s.Recipient.Type.Valid() {
			wells[WellRecipient] = "choose who receives the order"
		} else {
			wells[WellRecipient] = "recipient name and phone are required"
		}
	}

	if !IsStepComplete(StepDelivery, s) {
		if s.Delivery.Partner == nil {
			wells[WellDelivery] = "choose a delivery partner"
		} else {
			wells[WellDelivery] = s.Delivery.Partner.Name + " needs your account id"
		}
	}

	if !IsStepComplete(StepPayment, s) {
		wells[WellPayment] = "choose a payment method"
	}

	if len(wells) == 0 {
		return nil
	}

	verr := &ValidationError{Wells: wells}
	for _, w := range wellOrder {
		if _, ok := wells[w]; ok {
			verr.First = w
			break
		}
	}
	return verr
}

// FieldError is a format problem in one sub-form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalidInput
}

// ValidateRecipient checks the format of r. Presence is left to the completion predicate.
func ValidateRecipient(r Recipient) error {
	if !r.Type.Valid() {
		return &FieldError{Field: "type", Message: "must be one of self, gift, anonymous"}
	}
	if r.Phone != "" && !isDigits(r.Phone) {
		return &FieldError{Field: "phone", Message: "must contain digits only"}
	}
	return nil
}

// ValidatePaymentMethod checks that id is empty or in the payment catalog.
func ValidatePaymentMethod(id string) error {
	if id == "" {
		return nil
	}
	if _, err := payment.FindMethod(id); err != nil {
		return &FieldError{Field: "payment_method", Message: "is not offered"}
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
