package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lf3m/fee-comparator/internal/catalog"
	"github.com/lf3m/fee-comparator/internal/model"
)

const (
	SourceStatic   = "static"
	SourcePostgres = "postgres"
)

type GatewayLister interface {
	List(ctx context.Context) ([]model.PaymentGateway, error)
}

// LoadCatalog builds the process catalog once at startup. The postgres
// source needs a lister; the static source reads the embedded JSON.
func LoadCatalog(ctx context.Context, source string, lister GatewayLister) (*catalog.Catalog, error) {
	switch source {
	case SourceStatic, "":
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("load embedded catalog: %w", err)
		}
		log.Info().Str("source", SourceStatic).Int("gateways", cat.Len()).Msg("catalog loaded")
		return cat, nil
	case SourcePostgres:
		if lister == nil {
			return nil, fmt.Errorf("catalog source %q needs a database", source)
		}
		gateways, err := lister.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list gateways: %w", err)
		}
		cat, err := catalog.New(gateways)
		if err != nil {
			return nil, fmt.Errorf("build catalog: %w", err)
		}
		log.Info().Str("source", SourcePostgres).Int("gateways", cat.Len()).Msg("catalog loaded")
		return cat, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
}

type CatalogService struct {
	cat *catalog.Catalog
}

func NewCatalogService(cat *catalog.Catalog) *CatalogService {
	return &CatalogService{cat: cat}
}

// ListGateways returns all gateways, or only those supporting method when
// it is non-nil.
func (s *CatalogService) ListGateways(method *model.PaymentMethodType) []model.PaymentGateway {
	if method == nil {
		return s.cat.Gateways()
	}
	return s.cat.SupportedBy(*method)
}

func (s *CatalogService) GetGateway(name string) (model.PaymentGateway, error) {
	return s.cat.Gateway(name)
}

func (s *CatalogService) OptionCount() int {
	n := 0
	for _, g := range s.cat.Gateways() {
		n += len(g.SupportedOptions)
	}
	return n
}

func (s *CatalogService) GatewayCount() int {
	return s.cat.Len()
}
