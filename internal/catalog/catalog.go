package catalog

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lf3m/fee-comparator/internal/model"
	"github.com/lf3m/fee-comparator/seeddata"
)

var ErrGatewayNotFound = errors.New("gateway not found")

// Catalog is the read-only list of gateways. It is built once at startup and
// never mutated afterwards, so it can be shared between goroutines.
type Catalog struct {
	gateways []model.PaymentGateway
	byName   map[string]int
}

func New(gateways []model.PaymentGateway) (*Catalog, error) {
	if err := Validate(gateways); err != nil {
		return nil, err
	}

	c := &Catalog{
		gateways: cloneGateways(gateways),
		byName:   make(map[string]int, len(gateways)),
	}
	for i, g := range c.gateways {
		c.byName[g.Name] = i
	}
	return c, nil
}

func Parse(data []byte) (*Catalog, error) {
	var gateways []model.PaymentGateway
	if err := json.Unmarshal(data, &gateways); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}
	return New(gateways)
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(seeddata.GatewaysJSON)
}

func (c *Catalog) Gateways() []model.PaymentGateway {
	return cloneGateways(c.gateways)
}

func (c *Catalog) Len() int {
	return len(c.gateways)
}

func (c *Catalog) Gateway(name string) (model.PaymentGateway, error) {
	i, ok := c.byName[name]
	if !ok {
		return model.PaymentGateway{}, fmt.Errorf("%w: %q", ErrGatewayNotFound, name)
	}
	return cloneGateway(c.gateways[i]), nil
}

func (c *Catalog) SupportedBy(method model.PaymentMethodType) []model.PaymentGateway {
	var out []model.PaymentGateway
	for _, g := range c.gateways {
		if g.Supports(method) {
			out = append(out, cloneGateway(g))
		}
	}
	return out
}

func cloneGateways(in []model.PaymentGateway) []model.PaymentGateway {
	out := make([]model.PaymentGateway, len(in))
	for i, g := range in {
		out[i] = cloneGateway(g)
	}
	return out
}

func cloneGateway(g model.PaymentGateway) model.PaymentGateway {
	g.SupportedOptions = append([]model.FeeOption(nil), g.SupportedOptions...)
	return g
}
