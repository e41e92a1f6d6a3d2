package comparison

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lf3m/fee-comparator/internal/model"
)

var ErrInvalidAmount = errors.New("amount is not a number")

const maxAmountLength = 32

type State int

const (
	// StatePending means no valid amount has been seen yet.
	StatePending State = iota
	// StateReady means the result was computed from the latest input.
	StateReady
	// StateStale means the latest amount did not parse and the result
	// belongs to an earlier input.
	StateStale
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateStale:
		return "stale"
	default:
		return "pending"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseAmount accepts plain decimals such as "99.90" and "99,90". Empty,
// non-numeric, exponent-form or overlong input fails with ErrInvalidAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" || len(s) > maxAmountLength || strings.ContainsAny(s, "eE") {
		return decimal.Zero, ErrInvalidAmount
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

type Snapshot struct {
	State      State
	Amount     decimal.Decimal
	Method     model.PaymentMethodType
	NetAmounts NetAmounts
}

// Comparison joins the snapshot's amounts back to the given gateways. Rows
// of a pending snapshot carry fee data only.
func (s Snapshot) Comparison(gateways []model.PaymentGateway) Comparison {
	return buildRows(s.Amount, s.Method, gateways, s.NetAmounts, s.State != StatePending)
}

// Session keeps the last computed result for one interactive user. An input
// whose amount does not parse leaves the previous result in place. Not safe
// for concurrent use.
type Session struct {
	gateways []model.PaymentGateway
	current  Snapshot
}

func NewSession(gateways []model.PaymentGateway) *Session {
	return &Session{
		gateways: gateways,
		current:  Snapshot{State: StatePending, NetAmounts: NetAmounts{}},
	}
}

func (s *Session) Update(rawAmount string, method model.PaymentMethodType) Snapshot {
	amount, err := ParseAmount(rawAmount)
	if err != nil {
		switch s.current.State {
		case StateReady:
			s.current.State = StateStale
		case StatePending:
			// nothing computed yet, so only the selection moves
			s.current.Method = method
		}
		return s.current
	}

	s.current = Snapshot{
		State:      StateReady,
		Amount:     amount,
		Method:     method,
		NetAmounts: ComputeNetAmounts(amount, method, s.gateways),
	}
	return s.current
}

func (s *Session) Snapshot() Snapshot {
	return s.current
}

func (s *Session) Gateways() []model.PaymentGateway {
	return s.gateways
}
