package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lf3m/fee-comparator/internal/comparison"
	"github.com/lf3m/fee-comparator/internal/model"
)

func TestPageService_RenderHTML(t *testing.T) {
	pages, err := NewPageService()
	require.NoError(t, err)
	svc := NewComparisonService(testCatalog(t), nil)

	t.Run("ready page shows net amounts", func(t *testing.T) {
		res := svc.Compare("99.90", model.CreditCard)
		html, err := pages.RenderHTML(pages.NewPageData("99.90", res))
		require.NoError(t, err)

		body := string(html)
		assert.Contains(t, body, "R$ 94.42")
		assert.Contains(t, body, "-R$ 5.48")
		assert.Contains(t, body, ColorDeduction)
		assert.Contains(t, body, `value="credit_card" selected`)
	})

	t.Run("unsupported gateway", func(t *testing.T) {
		res := svc.Compare("50", model.Pix)
		html, err := pages.RenderHTML(pages.NewPageData("50", res))
		require.NoError(t, err)
		assert.Contains(t, string(html), UnsupportedLabel)
	})

	t.Run("pending page keeps the raw input", func(t *testing.T) {
		res := svc.Compare("<b>abc</b>", model.Pix)
		html, err := pages.RenderHTML(pages.NewPageData("<b>abc</b>", res))
		require.NoError(t, err)

		body := string(html)
		assert.Contains(t, body, "Estado: pending")
		assert.NotContains(t, body, "<b>abc</b>", "input must be escaped")
	})
}

func TestDeductedColor(t *testing.T) {
	assert.Equal(t, ColorNoDeduction, DeductedColor(decimal.Zero))
	assert.Equal(t, ColorDeduction, DeductedColor(decimal.RequireFromString("0.99")))
	assert.Equal(t, ColorDeduction, DeductedColor(decimal.RequireFromString("-1")))
}

func TestFormatDeducted(t *testing.T) {
	assert.Equal(t, "-R$ 0.99", FormatDeducted(decimal.RequireFromString("0.99")))
	assert.Equal(t, "-R$ 5.48", FormatDeducted(decimal.RequireFromString("5.47501")))
	assert.Equal(t, "R$ 0.00", FormatDeducted(decimal.Zero))
}

func TestOptionLabel(t *testing.T) {
	assert.Equal(t, "1x À vista", OptionLabel(comparison.Quote{Installments: "1x", Description: "À vista"}))
	assert.Equal(t, "D+30", OptionLabel(comparison.Quote{Description: "D+30"}))
	assert.Equal(t, "-", OptionLabel(comparison.Quote{}))
}
