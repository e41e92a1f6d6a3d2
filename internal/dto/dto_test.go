package dto

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lf3m/fee-comparator/internal/comparison"
	"github.com/lf3m/fee-comparator/internal/model"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query      string
		page, size int
		start, end int
	}{
		{"", 1, 20, 0, 6},
		{"?page=2&page_size=4", 2, 4, 4, 6},
		{"?page=3&page_size=4", 3, 4, 6, 6},
		{"?page=-1&page_size=-1", 1, 20, 0, 6},
		{"?page_size=101", 1, 100, 0, 6},
		{"?page=92233720368547759&page_size=100", 92233720368547758, 100, 6, 6},
		{"?page=92233720368547759", 92233720368547759, 20, 6, 6},
	}

	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/"+tc.query, nil)

			p := ParsePagination(c)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.size, p.PageSize)

			start, end := p.Window(6)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}

func TestWindow_OutOfRange(t *testing.T) {
	start, end := PaginationParams{Offset: -5, PageSize: 10}.Window(3)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)

	start, end = PaginationParams{Offset: math.MaxInt, PageSize: 100}.Window(3)
	assert.Equal(t, 3, start)
	assert.Equal(t, 3, end)
}

func TestNewPagination(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, PageSize: 4, TotalItems: 6, TotalPages: 2}, NewPagination(1, 4, 6))
	assert.Equal(t, 0, NewPagination(1, 20, 0).TotalPages)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "94.42", Money(decimal.RequireFromString("94.42499")))
	assert.Equal(t, "0.00", Money(decimal.Zero))
	assert.Equal(t, "3.50", Money(decimal.RequireFromString("3.5")))
}

func TestNewComparisonResponse(t *testing.T) {
	gateways := []model.PaymentGateway{
		{Name: "Alpha", SupportedOptions: []model.FeeOption{
			{ID: "alpha-pix", Type: model.Pix, PercentageFee: decimal.RequireFromString("0.99")},
		}},
		{Name: "Beta"},
	}

	t.Run("ready", func(t *testing.T) {
		cmp := comparison.BuildComparison(decimal.RequireFromString("100.00"), model.Pix, gateways)
		net := comparison.ComputeNetAmounts(decimal.RequireFromString("100.00"), model.Pix, gateways)

		resp := NewComparisonResponse(comparison.StateReady, cmp, net)
		assert.Equal(t, "ready", resp.State)
		assert.Equal(t, "100", resp.Amount)
		assert.Equal(t, "pix", resp.Method.Code)
		assert.Equal(t, map[string]string{"Alpha-single-0": "99.01"}, resp.NetAmounts)

		require.Len(t, resp.Gateways, 2)
		q := resp.Gateways[0].Options[0]
		assert.Equal(t, "99.01", q.NetAmountDisplay)
		assert.Equal(t, "0.99", q.AmountDeductedDisplay)
		assert.Equal(t, "0.00", q.FixedFee)
		assert.False(t, resp.Gateways[1].Supported)
		assert.Empty(t, resp.Gateways[1].Options)
	})

	t.Run("pending", func(t *testing.T) {
		snap := comparison.Snapshot{State: comparison.StatePending, Method: model.Pix, NetAmounts: comparison.NetAmounts{}}
		resp := NewComparisonResponse(snap.State, snap.Comparison(gateways), snap.NetAmounts)

		assert.Equal(t, "pending", resp.State)
		assert.Empty(t, resp.Amount)
		assert.Empty(t, resp.NetAmounts)
		q := resp.Gateways[0].Options[0]
		assert.Empty(t, q.NetAmount)
		assert.Equal(t, "0.99", q.PercentageFee)
	})
}
