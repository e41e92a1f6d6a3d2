package service

import (
	"github.com/lf3m/fee-comparator/internal/catalog"
	"github.com/lf3m/fee-comparator/internal/comparison"
	"github.com/lf3m/fee-comparator/internal/metrics"
	"github.com/lf3m/fee-comparator/internal/model"
)

type ComparisonService struct {
	cat     *catalog.Catalog
	metrics *metrics.Metrics
}

func NewComparisonService(cat *catalog.Catalog, m *metrics.Metrics) *ComparisonService {
	return &ComparisonService{cat: cat, metrics: m}
}

type ComparisonResult struct {
	State      comparison.State
	Comparison comparison.Comparison
	NetAmounts comparison.NetAmounts
}

// Compare never fails: an amount that does not parse gives a pending result
// carrying fee data but no computed amounts.
func (s *ComparisonService) Compare(rawAmount string, method model.PaymentMethodType) ComparisonResult {
	gateways := s.cat.Gateways()

	var result ComparisonResult
	amount, err := comparison.ParseAmount(rawAmount)
	if err != nil {
		snap := comparison.Snapshot{State: comparison.StatePending, Method: method, NetAmounts: comparison.NetAmounts{}}
		result = ComparisonResult{
			State:      snap.State,
			Comparison: snap.Comparison(gateways),
			NetAmounts: snap.NetAmounts,
		}
	} else {
		net := comparison.ComputeNetAmounts(amount, method, gateways)
		snap := comparison.Snapshot{State: comparison.StateReady, Amount: amount, Method: method, NetAmounts: net}
		result = ComparisonResult{
			State:      snap.State,
			Comparison: snap.Comparison(gateways),
			NetAmounts: net,
		}
	}

	if s.metrics != nil {
		s.metrics.IncrComparison(method.String(), result.State.String())
	}
	return result
}
