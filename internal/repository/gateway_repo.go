package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/lf3m/fee-comparator/internal/model"
)

type GatewayRepository struct {
	pool *pgxpool.Pool
}

func NewGatewayRepository(pool *pgxpool.Pool) *GatewayRepository {
	return &GatewayRepository{pool: pool}
}

type feeOptionRow struct {
	GatewayName string
	Option      model.FeeOption
}

// List returns every gateway with its fee options, both in authoring order.
func (r *GatewayRepository) List(ctx context.Context) ([]model.PaymentGateway, error) {
	g, gctx := errgroup.WithContext(ctx)

	var gateways []model.PaymentGateway
	var options []feeOptionRow

	g.Go(func() error {
		var err error
		gateways, err = r.listGateways(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		options, err = r.listFeeOptions(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(gateways))
	for i, gw := range gateways {
		index[gw.Name] = i
	}
	for _, o := range options {
		i, ok := index[o.GatewayName]
		if !ok {
			return nil, fmt.Errorf("fee option %s references unknown gateway %s", o.Option.ID, o.GatewayName)
		}
		gateways[i].SupportedOptions = append(gateways[i].SupportedOptions, o.Option)
	}

	return gateways, nil
}

func (r *GatewayRepository) listGateways(ctx context.Context) ([]model.PaymentGateway, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT name, image_url, source_url, COALESCE(note, '')
		FROM gateways ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query gateways: %w", err)
	}
	defer rows.Close()

	var results []model.PaymentGateway
	for rows.Next() {
		var gw model.PaymentGateway
		if err := rows.Scan(&gw.Name, &gw.ImageURL, &gw.SourceURL, &gw.Note); err != nil {
			return nil, fmt.Errorf("scan gateway: %w", err)
		}
		results = append(results, gw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gateways: %w", err)
	}
	return results, nil
}

func (r *GatewayRepository) listFeeOptions(ctx context.Context) ([]feeOptionRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT gateway_name, id, payment_method, COALESCE(description, ''),
			fixed_fee_in_cents, percentage_fee::text, COALESCE(installments, '')
		FROM fee_options ORDER BY gateway_name, position`)
	if err != nil {
		return nil, fmt.Errorf("query fee options: %w", err)
	}
	defer rows.Close()

	var results []feeOptionRow
	for rows.Next() {
		var row feeOptionRow
		var method, pct string
		if err := rows.Scan(&row.GatewayName, &row.Option.ID, &method, &row.Option.Description,
			&row.Option.FixedFeeInCents, &pct, &row.Option.Installments); err != nil {
			return nil, fmt.Errorf("scan fee option: %w", err)
		}

		if row.Option.Type, err = model.ParsePaymentMethod(method); err != nil {
			return nil, fmt.Errorf("fee option %s: %w", row.Option.ID, err)
		}
		if row.Option.PercentageFee, err = decimal.NewFromString(pct); err != nil {
			return nil, fmt.Errorf("fee option %s percentage: %w", row.Option.ID, err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fee options: %w", err)
	}
	return results, nil
}
