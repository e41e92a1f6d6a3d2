package service

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lf3m/fee-comparator/internal/comparison"
	"github.com/lf3m/fee-comparator/internal/metrics"
	"github.com/lf3m/fee-comparator/internal/model"
)

func TestComparisonService_Compare(t *testing.T) {
	m := metrics.New()
	svc := NewComparisonService(testCatalog(t), m)

	t.Run("ready", func(t *testing.T) {
		res := svc.Compare("99.90", model.CreditCard)
		assert.Equal(t, comparison.StateReady, res.State)
		require.Len(t, res.NetAmounts, 2)

		net := res.NetAmounts[comparison.Key{Gateway: "Alpha", Installments: "1x", Index: 0}]
		assert.True(t, decimal.RequireFromString("94.42499").Equal(net))

		require.Len(t, res.Comparison.Rows, 2)
		assert.True(t, res.Comparison.Rows[0].Supported)
		assert.True(t, res.Comparison.Rows[1].Supported)
	})

	t.Run("unsupported gateway is marked", func(t *testing.T) {
		res := svc.Compare("50.00", model.Pix)
		require.Len(t, res.Comparison.Rows, 2)
		assert.True(t, res.Comparison.Rows[0].Supported)
		assert.False(t, res.Comparison.Rows[1].Supported)
		assert.Len(t, res.NetAmounts, 1)
	})

	t.Run("pending on unparseable amount", func(t *testing.T) {
		res := svc.Compare("abc", model.CreditCard)
		assert.Equal(t, comparison.StatePending, res.State)
		assert.Empty(t, res.NetAmounts)

		require.Len(t, res.Comparison.Rows, 2)
		q := res.Comparison.Rows[0].Quotes[0]
		assert.True(t, decimal.RequireFromString("0.49").Equal(q.FixedFee), "fee data is still present")
		assert.True(t, q.NetAmount.IsZero())
	})

	series, err := testutil.GatherAndCount(m.Registry, "lf3m_comparisons_total")
	require.NoError(t, err)
	assert.Equal(t, 3, series, "one series per (method, state) pair seen")
}
