package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lf3m/fee-comparator/internal/catalog"
	"github.com/lf3m/fee-comparator/internal/model"
)

type stubLister struct {
	gateways []model.PaymentGateway
	err      error
}

func (s stubLister) List(context.Context) ([]model.PaymentGateway, error) {
	return s.gateways, s.err
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]model.PaymentGateway{
		{
			Name: "Alpha",
			SupportedOptions: []model.FeeOption{
				{ID: "alpha-pix", Type: model.Pix, PercentageFee: decimal.RequireFromString("0.99")},
				{ID: "alpha-cc-1x", Type: model.CreditCard, FixedFeeInCents: 49, PercentageFee: decimal.RequireFromString("4.99"), Installments: "1x"},
			},
		},
		{
			Name: "CreditOnly",
			SupportedOptions: []model.FeeOption{
				{ID: "credit-only-1x", Type: model.CreditCard, PercentageFee: decimal.RequireFromString("3.99"), Installments: "1x"},
			},
		},
	})
	require.NoError(t, err)
	return cat
}

func TestLoadCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("static source", func(t *testing.T) {
		cat, err := LoadCatalog(ctx, SourceStatic, nil)
		require.NoError(t, err)
		assert.Greater(t, cat.Len(), 0)
	})

	t.Run("empty source defaults to static", func(t *testing.T) {
		cat, err := LoadCatalog(ctx, "", nil)
		require.NoError(t, err)
		assert.Greater(t, cat.Len(), 0)
	})

	t.Run("postgres source", func(t *testing.T) {
		lister := stubLister{gateways: []model.PaymentGateway{{Name: "FromDB"}}}
		cat, err := LoadCatalog(ctx, SourcePostgres, lister)
		require.NoError(t, err)
		_, err = cat.Gateway("FromDB")
		assert.NoError(t, err)
	})

	t.Run("postgres source without database", func(t *testing.T) {
		_, err := LoadCatalog(ctx, SourcePostgres, nil)
		assert.Error(t, err)
	})

	t.Run("postgres error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := LoadCatalog(ctx, SourcePostgres, stubLister{err: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("invalid rows from database", func(t *testing.T) {
		lister := stubLister{gateways: []model.PaymentGateway{{Name: "A"}, {Name: "A"}}}
		_, err := LoadCatalog(ctx, SourcePostgres, lister)
		assert.ErrorIs(t, err, catalog.ErrInvalidCatalog)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, err := LoadCatalog(ctx, "redis", nil)
		assert.Error(t, err)
	})
}

func TestCatalogService(t *testing.T) {
	svc := NewCatalogService(testCatalog(t))

	assert.Len(t, svc.ListGateways(nil), 2)

	pix := model.Pix
	got := svc.ListGateways(&pix)
	require.Len(t, got, 1)
	assert.Equal(t, "Alpha", got[0].Name)

	_, err := svc.GetGateway("Nope")
	assert.ErrorIs(t, err, catalog.ErrGatewayNotFound)

	assert.Equal(t, 2, svc.GatewayCount())
	assert.Equal(t, 3, svc.OptionCount())
}
