package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPromo(t *testing.T) {
	p, err := LookupPromo(" save10 ")
	require.NoError(t, err)
	assert.Equal(t, "SAVE10", p.Code)

	_, err = LookupPromo("FREE")
	assert.ErrorIs(t, err, ErrUnknownPromo)
}

func TestComputeTotals(t *testing.T) {
	t.Run("Save10", func(t *testing.T) {
		got := ComputeTotals(decimal.NewFromInt(1000), "SAVE10")
		assert.True(t, got.Discount.Equal(decimal.NewFromInt(100)), got.Discount.String())
		assert.True(t, got.Total.Equal(decimal.NewFromInt(900)), got.Total.String())
	})

	t.Run("NoPromo", func(t *testing.T) {
		got := ComputeTotals(decimal.NewFromInt(1000), "")
		assert.True(t, got.Discount.IsZero())
		assert.True(t, got.Total.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("UnknownPromoGivesNoDiscount", func(t *testing.T) {
		got := ComputeTotals(decimal.NewFromInt(1000), "BOGUS")
		assert.True(t, got.Discount.IsZero())
	})

	t.Run("RoundsToCents", func(t *testing.T) {
		got := ComputeTotals(decimal.RequireFromString("99.99"), "SAVE10")
		assert.Equal(t, "10.00", got.Discount.StringFixed(2))
		assert.Equal(t, "89.99", got.Total.StringFixed(2))
	})
}
