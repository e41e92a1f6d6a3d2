package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownPaymentMethod = errors.New("unknown payment method")

type PaymentMethodType int

const (
	Pix        PaymentMethodType = 1
	CreditCard PaymentMethodType = 2
	DebitCard  PaymentMethodType = 3
	Boleto     PaymentMethodType = 4
)

var paymentMethodCodes = map[PaymentMethodType]string{
	Pix:        "pix",
	CreditCard: "credit_card",
	DebitCard:  "debit_card",
	Boleto:     "boleto",
}

var paymentMethodLabels = map[PaymentMethodType]string{
	Pix:        "PIX",
	CreditCard: "Cartão de Crédito",
	DebitCard:  "Cartão de Débito",
	Boleto:     "Boleto",
}

// PaymentMethods returns every payment method in display order.
func PaymentMethods() []PaymentMethodType {
	return []PaymentMethodType{Pix, CreditCard, DebitCard, Boleto}
}

func (t PaymentMethodType) Valid() bool {
	_, ok := paymentMethodCodes[t]
	return ok
}

func (t PaymentMethodType) String() string {
	if code, ok := paymentMethodCodes[t]; ok {
		return code
	}
	return "PaymentMethodType(" + strconv.Itoa(int(t)) + ")"
}

func (t PaymentMethodType) Label() string {
	return paymentMethodLabels[t]
}

func (t PaymentMethodType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPaymentMethod, int(t))
	}
	return []byte(t.String()), nil
}

func (t *PaymentMethodType) UnmarshalText(text []byte) error {
	parsed, err := ParsePaymentMethod(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParsePaymentMethod accepts the code ("pix", "credit_card", ...) in any case
// or the numeric value (1..4).
func ParsePaymentMethod(s string) (PaymentMethodType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		t := PaymentMethodType(n)
		if t.Valid() {
			return t, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
	}
	for t, code := range paymentMethodCodes {
		if code == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
}

type FeeOption struct {
	ID              string            `json:"id"`
	Type            PaymentMethodType `json:"type"`
	Description     string            `json:"description,omitempty"`
	FixedFeeInCents int64             `json:"fixed_fee_in_cents"`
	PercentageFee   decimal.Decimal   `json:"percentage_fee"`
	Installments    string            `json:"installments,omitempty"`
}

// FixedFee is the flat fee in currency units.
func (o FeeOption) FixedFee() decimal.Decimal {
	return decimal.New(o.FixedFeeInCents, -2)
}

type PaymentGateway struct {
	Name             string      `json:"name"`
	ImageURL         string      `json:"image_url"`
	SourceURL        string      `json:"source_url"`
	Note             string      `json:"note,omitempty"`
	SupportedOptions []FeeOption `json:"supported_options"`
}

// OptionsFor keeps catalog order.
func (g PaymentGateway) OptionsFor(method PaymentMethodType) []FeeOption {
	var out []FeeOption
	for _, o := range g.SupportedOptions {
		if o.Type == method {
			out = append(out, o)
		}
	}
	return out
}

func (g PaymentGateway) Supports(method PaymentMethodType) bool {
	for _, o := range g.SupportedOptions {
		if o.Type == method {
			return true
		}
	}
	return false
}
