package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"

	"github.com/lf3m/fee-comparator/internal/comparison"
	"github.com/lf3m/fee-comparator/internal/model"
	"github.com/lf3m/fee-comparator/internal/service"
)

var errTooManyFields = errors.New("expected an amount, a payment method or \"<amount> <method>\"")

// Input is one parsed line. A nil Method keeps the current method and an
// empty Amount with HasAmount false keeps the current amount.
type Input struct {
	Amount    string
	HasAmount bool
	Method    *model.PaymentMethodType
	Quit      bool
}

// ParseLine reads "q", a method code, an amount, or "<amount> <method>".
// A lone number is always an amount; numeric methods are only accepted in
// the two-field form.
func ParseLine(line string) (Input, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return Input{}, nil
	case 1:
		f := fields[0]
		if strings.EqualFold(f, "q") || strings.EqualFold(f, "quit") {
			return Input{Quit: true}, nil
		}
		if m, err := model.ParsePaymentMethod(f); err == nil && !isNumeric(f) {
			return Input{Method: &m}, nil
		}
		return Input{Amount: f, HasAmount: true}, nil
	case 2:
		m, err := model.ParsePaymentMethod(fields[1])
		if err != nil {
			return Input{}, err
		}
		return Input{Amount: fields[0], HasAmount: true, Method: &m}, nil
	default:
		return Input{}, errTooManyFields
	}
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

type Loop struct {
	session *comparison.Session
	amount  string
	method  model.PaymentMethodType
}

func NewLoop(session *comparison.Session, amount string, method model.PaymentMethodType) *Loop {
	return &Loop{session: session, amount: amount, method: method}
}

// Run prints the comparison for the initial input, then one table per line
// read from in until EOF or "q".
func (l *Loop) Run(in io.Reader, out io.Writer) error {
	if err := l.apply(out); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		input, err := ParseLine(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "erro: %v\n", err)
			continue
		}
		if input.Quit {
			return nil
		}
		if !input.HasAmount && input.Method == nil {
			continue
		}
		if input.HasAmount {
			l.amount = input.Amount
		}
		if input.Method != nil {
			l.method = *input.Method
		}
		if err := l.apply(out); err != nil {
			return err
		}
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func (l *Loop) apply(out io.Writer) error {
	snap := l.session.Update(l.amount, l.method)
	log.Debug().
		Str("amount", l.amount).
		Str("method", l.method.String()).
		Str("state", snap.State.String()).
		Int("entries", len(snap.NetAmounts)).
		Msg("comparison updated")
	return Render(out, snap, l.session.Gateways())
}

// Render writes a snapshot as an aligned table. Amounts are shown with two
// decimals.
func Render(out io.Writer, snap comparison.Snapshot, gateways []model.PaymentGateway) error {
	computed := snap.State != comparison.StatePending

	switch snap.State {
	case comparison.StatePending:
		fmt.Fprintf(out, "%s · aguardando um valor válido\n", snap.Method.Label())
	case comparison.StateStale:
		fmt.Fprintf(out, "%s · R$ %s (valor inválido, mantendo o último resultado)\n", snap.Method.Label(), snap.Amount.StringFixed(2))
	default:
		fmt.Fprintf(out, "%s · R$ %s\n", snap.Method.Label(), snap.Amount.StringFixed(2))
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GATEWAY\tOPÇÃO\tTAXA FIXA\tTAXA %\tVOCÊ RECEBE\tDESCONTADO")
	for _, row := range snap.Comparison(gateways).Rows {
		if !row.Supported {
			fmt.Fprintf(tw, "%s\t%s\t\t\t\t\n", row.Gateway.Name, service.UnsupportedLabel)
			continue
		}
		for _, q := range row.Quotes {
			net, deducted := "-", "-"
			if computed {
				net = "R$ " + q.NetAmount.StringFixed(2)
				deducted = service.FormatDeducted(q.AmountDeducted)
			}
			fmt.Fprintf(tw, "%s\t%s\tR$ %s\t%s%%\t%s\t%s\n",
				row.Gateway.Name, service.OptionLabel(q), q.FixedFee.StringFixed(2), q.PercentageFee.String(), net, deducted)
		}
	}
	return tw.Flush()
}
