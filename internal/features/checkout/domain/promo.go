package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrUnknownPromo is returned when a promo code is not recognised.
var ErrUnknownPromo = errors.New("unknown promo code")

// Promo is a percentage discount on the cart subtotal.
type Promo struct {
	Code    string
	Percent decimal.Decimal
}

var promos = map[string]Promo{
	"SAVE10": {Code: "SAVE10", Percent: decimal.NewFromInt(10)},
}

// NormalizePromoCode trims and upper-cases code.
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LookupPromo returns the promo registered under code.
func LookupPromo(code string) (Promo, error) {
	p, ok := promos[NormalizePromoCode(code)]
	if !ok {
		return Promo{}, fmt.Errorf("%w: %q", ErrUnknownPromo, code)
	}
	return p, nil
}

// Discount returns the amount taken off subtotal, rounded to cents and never above subtotal.
func (p Promo) Discount(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}
	d := subtotal.Mul(p.Percent).Div(decimal.NewFromInt(100)).Round(2)
	if d.GreaterThan(subtotal) {
		return subtotal
	}
	return d
}

// Totals is the price breakdown shown on review and sent with the order.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals applies promoCode, when set, to subtotal. An unknown code yields no discount.
func ComputeTotals(subtotal decimal.Decimal, promoCode string) Totals {
	t := Totals{Subtotal: subtotal, Discount: decimal.Zero, Total: subtotal}
	if promoCode == "" {
		return t
	}
	if p, err := LookupPromo(promoCode); err == nil {
		t.Discount = p.Discount(subtotal)
		t.Total = subtotal.Sub(t.Discount)
	}
	return t
}
