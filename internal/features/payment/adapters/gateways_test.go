package adapters

import (
	"context"
	"testing"

	"storefront-checkout/internal/features/payment/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEsewaGateway_Handoff(t *testing.T) {
	g := NewEsewaGateway("https://uat.esewa.com.np/epay/main", "EPAYTEST", "https://shop.test")

	h, err := g.Handoff(context.Background(), "42", decimal.RequireFromString("900"))
	require.NoError(t, err)

	assert.Equal(t, domain.HandoffFormPost, h.Kind)
	assert.Equal(t, domain.ProviderEsewa, h.Provider)
	assert.Equal(t, "https://uat.esewa.com.np/epay/main", h.URL)

	assert.Equal(t, "900.00", h.Field("amt"))
	assert.Equal(t, "0.00", h.Field("psc"))
	assert.Equal(t, "0.00", h.Field("pdc"))
	assert.Equal(t, "0.00", h.Field("txAmt"))
	assert.Equal(t, "900.00", h.Field("tAmt"))
	assert.Equal(t, "42", h.Field("pid"))
	assert.Equal(t, "EPAYTEST", h.Field("scd"))
	assert.Equal(t, "https://shop.test/checkout/Successpage?oid=42", h.Field("su"))
	assert.Equal(t, "https://shop.test/checkout/Failurepage?oid=42", h.Field("fu"))

	names := make([]string, 0, len(h.Fields))
	for _, f := range h.Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"amt", "psc", "pdc", "txAmt", "tAmt", "pid", "scd", "su", "fu"}, names)
}

func TestEsewaGateway_Rejects(t *testing.T) {
	g := NewEsewaGateway("https://esewa.test", "EPAYTEST", "https://shop.test")

	_, err := g.Handoff(context.Background(), "", decimal.NewFromInt(10))
	assert.Error(t, err)

	_, err = g.Handoff(context.Background(), "42", decimal.Zero)
	assert.Error(t, err)
}

func TestRedirectGateways(t *testing.T) {
	ctx := context.Background()

	cod, err := NewCashOnDeliveryGateway("https://shop.test").Handoff(ctx, "7", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, domain.HandoffRedirect, cod.Kind)
	assert.Equal(t, domain.ProviderCOD, cod.Provider)
	assert.Equal(t, "https://shop.test/checkout/Successpage?oid=7", cod.URL)
	assert.Empty(t, cod.Fields)

	khalti, err := NewKhaltiStubGateway("").Handoff(ctx, "8", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderKhalti, khalti.Provider)
	assert.Equal(t, "/checkout/Successpage?oid=8", khalti.URL)
}
