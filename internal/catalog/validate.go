package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lf3m/fee-comparator/internal/model"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

var hundred = decimal.NewFromInt(100)

// Validate checks the authoring rules of a catalog. All problems are reported
// together, joined into one error wrapping ErrInvalidCatalog.
func Validate(gateways []model.PaymentGateway) error {
	var problems []string
	names := make(map[string]bool, len(gateways))
	ids := make(map[string]string)

	for gi, g := range gateways {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			problems = append(problems, fmt.Sprintf("gateway %d: empty name", gi))
		} else if names[name] {
			problems = append(problems, fmt.Sprintf("gateway %q: duplicate name", name))
		}
		names[name] = true

		configs := make(map[string]bool, len(g.SupportedOptions))
		for oi, o := range g.SupportedOptions {
			where := fmt.Sprintf("gateway %q option %d", g.Name, oi)

			if !o.Type.Valid() {
				problems = append(problems, where+": unknown payment method")
			}
			if o.FixedFeeInCents < 0 {
				problems = append(problems, where+": negative fixed fee")
			}
			if o.PercentageFee.IsNegative() {
				problems = append(problems, where+": negative percentage fee")
			}
			if o.PercentageFee.GreaterThan(hundred) {
				problems = append(problems, where+": percentage fee above 100")
			}
			if o.Installments != "" && o.Type != model.CreditCard {
				problems = append(problems, where+": installments on a method without installments")
			}

			if o.ID == "" {
				problems = append(problems, where+": empty id")
			} else if owner, ok := ids[o.ID]; ok {
				problems = append(problems, fmt.Sprintf("%s: id %q already used by gateway %q", where, o.ID, owner))
			} else {
				ids[o.ID] = g.Name
			}

			config := fmt.Sprintf("%d|%s|%s", o.Type, o.Installments, o.Description)
			if configs[config] {
				problems = append(problems, where+": duplicate fee configuration")
			}
			configs[config] = true
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}
	return nil
}
