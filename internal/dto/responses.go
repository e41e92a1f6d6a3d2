package dto

import (
	"github.com/shopspring/decimal"

	"github.com/lf3m/fee-comparator/internal/comparison"
	"github.com/lf3m/fee-comparator/internal/model"
)

type PaymentMethodResponse struct {
	Code  string `json:"code"`
	Value int    `json:"value"`
	Label string `json:"label"`
}

type FeeOptionResponse struct {
	ID              string `json:"id"`
	PaymentMethod   string `json:"payment_method"`
	Description     string `json:"description,omitempty"`
	Installments    string `json:"installments,omitempty"`
	FixedFeeInCents int64  `json:"fixed_fee_in_cents"`
	FixedFee        string `json:"fixed_fee"`
	PercentageFee   string `json:"percentage_fee"`
}

type GatewayResponse struct {
	Name      string              `json:"name"`
	ImageURL  string              `json:"image_url"`
	SourceURL string              `json:"source_url"`
	Note      string              `json:"note,omitempty"`
	Options   []FeeOptionResponse `json:"options"`
}

type QuoteResponse struct {
	Key                   string `json:"key"`
	Gateway               string `json:"gateway"`
	OptionID              string `json:"option_id"`
	Description           string `json:"description,omitempty"`
	Installments          string `json:"installments,omitempty"`
	FixedFee              string `json:"fixed_fee"`
	PercentageFee         string `json:"percentage_fee"`
	NetAmount             string `json:"net_amount,omitempty"`
	NetAmountDisplay      string `json:"net_amount_display,omitempty"`
	AmountDeducted        string `json:"amount_deducted,omitempty"`
	AmountDeductedDisplay string `json:"amount_deducted_display,omitempty"`
}

type GatewayComparisonResponse struct {
	Gateway   string          `json:"gateway"`
	ImageURL  string          `json:"image_url"`
	SourceURL string          `json:"source_url"`
	Note      string          `json:"note,omitempty"`
	Supported bool            `json:"supported"`
	Options   []QuoteResponse `json:"options"`
}

type ComparisonResponse struct {
	State      string                      `json:"state"`
	Amount     string                      `json:"amount,omitempty"`
	Method     PaymentMethodResponse       `json:"method"`
	NetAmounts map[string]string           `json:"net_amounts"`
	Gateways   []GatewayComparisonResponse `json:"gateways"`
	Ranking    []QuoteResponse             `json:"ranking,omitempty"`
}

// Money renders a currency value with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func NewPaymentMethodResponse(t model.PaymentMethodType) PaymentMethodResponse {
	return PaymentMethodResponse{Code: t.String(), Value: int(t), Label: t.Label()}
}

func NewGatewayResponse(g model.PaymentGateway) GatewayResponse {
	options := make([]FeeOptionResponse, len(g.SupportedOptions))
	for i, o := range g.SupportedOptions {
		options[i] = FeeOptionResponse{
			ID:              o.ID,
			PaymentMethod:   o.Type.String(),
			Description:     o.Description,
			Installments:    o.Installments,
			FixedFeeInCents: o.FixedFeeInCents,
			FixedFee:        Money(o.FixedFee()),
			PercentageFee:   o.PercentageFee.String(),
		}
	}
	return GatewayResponse{
		Name:      g.Name,
		ImageURL:  g.ImageURL,
		SourceURL: g.SourceURL,
		Note:      g.Note,
		Options:   options,
	}
}

func NewQuoteResponse(q comparison.Quote, computed bool) QuoteResponse {
	resp := QuoteResponse{
		Key:           q.Key.String(),
		Gateway:       q.Key.Gateway,
		OptionID:      q.OptionID,
		Description:   q.Description,
		Installments:  q.Installments,
		FixedFee:      Money(q.FixedFee),
		PercentageFee: q.PercentageFee.String(),
	}
	if computed {
		resp.NetAmount = q.NetAmount.String()
		resp.NetAmountDisplay = Money(q.NetAmount)
		resp.AmountDeducted = q.AmountDeducted.String()
		resp.AmountDeductedDisplay = Money(q.AmountDeducted)
	}
	return resp
}

func NewComparisonResponse(state comparison.State, cmp comparison.Comparison, net comparison.NetAmounts) ComparisonResponse {
	computed := state != comparison.StatePending

	resp := ComparisonResponse{
		State:      state.String(),
		Method:     NewPaymentMethodResponse(cmp.Method),
		NetAmounts: make(map[string]string, len(net)),
		Gateways:   make([]GatewayComparisonResponse, 0, len(cmp.Rows)),
	}
	if computed {
		resp.Amount = cmp.Amount.String()
	}
	for k, v := range net {
		resp.NetAmounts[k.String()] = v.String()
	}

	for _, row := range cmp.Rows {
		g := GatewayComparisonResponse{
			Gateway:   row.Gateway.Name,
			ImageURL:  row.Gateway.ImageURL,
			SourceURL: row.Gateway.SourceURL,
			Note:      row.Gateway.Note,
			Supported: row.Supported,
			Options:   make([]QuoteResponse, 0, len(row.Quotes)),
		}
		for _, q := range row.Quotes {
			g.Options = append(g.Options, NewQuoteResponse(q, computed))
		}
		resp.Gateways = append(resp.Gateways, g)
	}
	return resp
}
