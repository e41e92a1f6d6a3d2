package service

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lf3m/fee-comparator/internal/comparison"
	"github.com/lf3m/fee-comparator/internal/model"
	"github.com/lf3m/fee-comparator/internal/templates"
)

const (
	UnsupportedLabel = "🚫 Não suportado"

	ColorNoDeduction = "#007bff"
	ColorDeduction   = "#ff4d4f"
)

type PageData struct {
	AmountInput string
	Method      model.PaymentMethodType
	Methods     []model.PaymentMethodType
	State       comparison.State
	Computed    bool
	Amount      decimal.Decimal
	Rows        []comparison.Row
	Unsupported string
}

type PageService struct {
	tmpl *template.Template
}

func NewPageService() (*PageService, error) {
	funcMap := template.FuncMap{
		"money":         func(d decimal.Decimal) string { return d.StringFixed(2) },
		"deductedStyle": func(d decimal.Decimal) template.CSS { return template.CSS("color: " + DeductedColor(d)) },
		"optionLabel":   OptionLabel,
		"deducted":      FormatDeducted,
	}

	tmpl, err := template.New("comparison").Funcs(funcMap).Parse(templates.ComparisonHTML)
	if err != nil {
		return nil, fmt.Errorf("parse comparison template: %w", err)
	}
	return &PageService{tmpl: tmpl}, nil
}

func (s *PageService) NewPageData(amountInput string, res ComparisonResult) PageData {
	return PageData{
		AmountInput: amountInput,
		Method:      res.Comparison.Method,
		Methods:     model.PaymentMethods(),
		State:       res.State,
		Computed:    res.State != comparison.StatePending,
		Amount:      res.Comparison.Amount,
		Rows:        res.Comparison.Rows,
		Unsupported: UnsupportedLabel,
	}
}

func (s *PageService) RenderHTML(data PageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render comparison page: %w", err)
	}
	return buf.Bytes(), nil
}

// DeductedColor is blue when nothing was deducted and red otherwise.
func DeductedColor(deducted decimal.Decimal) string {
	if deducted.IsZero() {
		return ColorNoDeduction
	}
	return ColorDeduction
}

// FormatDeducted prefixes a non-zero deduction with a minus sign, e.g.
// "-R$ 0.99", and leaves "R$ 0.00" bare.
func FormatDeducted(deducted decimal.Decimal) string {
	if deducted.IsZero() {
		return "R$ " + deducted.StringFixed(2)
	}
	return "-R$ " + deducted.StringFixed(2)
}

// OptionLabel joins the installment count and description, e.g. "1x À vista".
func OptionLabel(q comparison.Quote) string {
	parts := make([]string, 0, 2)
	if q.Installments != "" {
		parts = append(parts, q.Installments)
	}
	if q.Description != "" {
		parts = append(parts, q.Description)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
