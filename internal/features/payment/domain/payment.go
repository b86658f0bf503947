package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// Provider is the stable identifier of the payment rail behind a method.
type Provider string

const (
	ProviderEsewa  Provider = "esewa"
	ProviderKhalti Provider = "khalti"
	ProviderCOD    Provider = "cod"
)

// Internal pages the customer lands on after a handoff.
const (
	SuccessPath = "/checkout/Successpage"
	FailurePath = "/checkout/Failurepage"
)

// ErrUnknownMethod is returned for a payment method id outside the catalog.
var ErrUnknownMethod = errors.New("unknown payment method")

// Method is a payment option offered at checkout.
type Method struct {
	// ID is the slug sent as payment_type with the order.
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Provider    Provider `json:"provider"`
	Logo        string   `json:"logo"`
	Description string   `json:"description"`
}

var methods = []Method{
	{ID: "esewa", Name: "eSewa", Provider: ProviderEsewa, Logo: "/images/payments/esewa.png", Description: "Pay with your eSewa wallet"},
	{ID: "khalti", Name: "Khalti", Provider: ProviderKhalti, Logo: "/images/payments/khalti.png", Description: "Pay with your Khalti wallet"},
	{ID: "cash-on-delivery", Name: "Cash on Delivery", Provider: ProviderCOD, Logo: "/images/payments/cod.png", Description: "Pay when the order arrives"},
}

// Methods returns a copy of the payment method catalog.
func Methods() []Method {
	return append([]Method(nil), methods...)
}

// FindMethod looks a method up by id.
func FindMethod(id string) (Method, error) {
	for _, m := range methods {
		if m.ID == id {
			return m, nil
		}
	}
	return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, id)
}

// HandoffKind tells the browser how to leave the storefront.
type HandoffKind string

const (
	// HandoffRedirect is a plain navigation to URL.
	HandoffRedirect HandoffKind = "redirect"
	// HandoffFormPost is a classic form POST of Fields to URL.
	HandoffFormPost HandoffKind = "form_post"
)

// FormField is one hidden input of a form post.
type FormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Handoff is the terminal navigation that follows a placed order.
type Handoff struct {
	OrderID  string          `json:"order_id"`
	UserID   string          `json:"user_id,omitempty"`
	Provider Provider        `json:"provider"`
	Kind     HandoffKind     `json:"kind"`
	URL      string          `json:"url"`
	Fields   []FormField     `json:"fields,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// Field returns the value of the named form field.
func (h *Handoff) Field(name string) string {
	for _, f := range h.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// PageURL joins base and path and sets the oid query parameter.
func PageURL(base, path, orderID string) string {
	q := url.Values{}
	q.Set("oid", orderID)
	return strings.TrimRight(base, "/") + path + "?" + q.Encode()
}
