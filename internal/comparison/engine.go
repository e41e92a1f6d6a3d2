package comparison

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lf3m/fee-comparator/internal/model"
)

const singleInstallment = "single"

var hundred = decimal.NewFromInt(100)

// Key identifies one computed entry: the gateway, the option's installment
// label and the option's position among the gateway's options for the
// selected method.
type Key struct {
	Gateway      string
	Installments string
	Index        int
}

func NewKey(gateway string, option model.FeeOption, index int) Key {
	installments := option.Installments
	if installments == "" {
		installments = singleInstallment
	}
	return Key{Gateway: gateway, Installments: installments, Index: index}
}

func (k Key) String() string {
	return fmt.Sprintf("%s-%s-%d", k.Gateway, k.Installments, k.Index)
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type NetAmounts map[Key]decimal.Decimal

// NetAmount is amount - fixedFeeInCents/100 - amount*percentageFee/100.
func NetAmount(amount decimal.Decimal, option model.FeeOption) decimal.Decimal {
	percentage := amount.Mul(option.PercentageFee).Div(hundred)
	return amount.Sub(option.FixedFee()).Sub(percentage)
}

// ComputeNetAmounts has one entry per gateway option matching method.
// Gateways without a matching option contribute nothing.
func ComputeNetAmounts(amount decimal.Decimal, method model.PaymentMethodType, gateways []model.PaymentGateway) NetAmounts {
	out := make(NetAmounts)
	for _, g := range gateways {
		for i, o := range g.OptionsFor(method) {
			out[NewKey(g.Name, o, i)] = NetAmount(amount, o)
		}
	}
	return out
}

// Deducted is what the gateway keeps.
func Deducted(amount, net decimal.Decimal) decimal.Decimal {
	return amount.Sub(net)
}

type Quote struct {
	Key            Key
	OptionID       string
	Description    string
	Installments   string
	FixedFee       decimal.Decimal
	PercentageFee  decimal.Decimal
	NetAmount      decimal.Decimal
	AmountDeducted decimal.Decimal
}

type Row struct {
	Gateway   model.PaymentGateway
	Supported bool
	Quotes    []Quote
}

type Comparison struct {
	Amount decimal.Decimal
	Method model.PaymentMethodType
	Rows   []Row
}

// BuildComparison returns one row per gateway in catalog order.
func BuildComparison(amount decimal.Decimal, method model.PaymentMethodType, gateways []model.PaymentGateway) Comparison {
	return buildRows(amount, method, gateways, ComputeNetAmounts(amount, method, gateways), true)
}

// buildRows joins computed amounts back to the options that produced them.
// When computed is false only fee data is filled in.
func buildRows(amount decimal.Decimal, method model.PaymentMethodType, gateways []model.PaymentGateway, net NetAmounts, computed bool) Comparison {
	cmp := Comparison{Amount: amount, Method: method, Rows: make([]Row, 0, len(gateways))}
	for _, g := range gateways {
		options := g.OptionsFor(method)
		row := Row{Gateway: g, Supported: len(options) > 0}
		for i, o := range options {
			q := Quote{
				Key:           NewKey(g.Name, o, i),
				OptionID:      o.ID,
				Description:   o.Description,
				Installments:  o.Installments,
				FixedFee:      o.FixedFee(),
				PercentageFee: o.PercentageFee,
			}
			if v, ok := net[q.Key]; ok && computed {
				q.NetAmount = v
				q.AmountDeducted = Deducted(amount, v)
			}
			row.Quotes = append(row.Quotes, q)
		}
		cmp.Rows = append(cmp.Rows, row)
	}
	return cmp
}

// Cheapest flattens the comparison, best net amount first.
func (c Comparison) Cheapest() []Quote {
	var out []Quote
	for _, r := range c.Rows {
		out = append(out, r.Quotes...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if cmp := out[i].NetAmount.Cmp(out[j].NetAmount); cmp != 0 {
			return cmp > 0
		}
		return out[i].Key.String() < out[j].Key.String()
	})
	return out
}
