package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/lf3m/fee-comparator/internal/catalog"
)

// SeedData copies the embedded catalog into the gateways and fee_options
// tables. It does nothing when gateways already exist.
func SeedData(ctx context.Context, pool *pgxpool.Pool, cat *catalog.Catalog) error {
	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM gateways").Scan(&count)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("seed data already exists, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	gateways := cat.Gateways()
	options := 0
	for gi, g := range gateways {
		_, err := tx.Exec(ctx,
			"INSERT INTO gateways (name, image_url, source_url, note, position) VALUES ($1, $2, $3, NULLIF($4, ''), $5)",
			g.Name, g.ImageURL, g.SourceURL, g.Note, gi)
		if err != nil {
			return fmt.Errorf("insert gateway %s: %w", g.Name, err)
		}

		for oi, o := range g.SupportedOptions {
			_, err := tx.Exec(ctx,
				`INSERT INTO fee_options (id, gateway_name, payment_method, description, fixed_fee_in_cents, percentage_fee, installments, position)
				VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6::numeric, NULLIF($7, ''), $8)`,
				o.ID, g.Name, o.Type.String(), o.Description, o.FixedFeeInCents, o.PercentageFee.String(), o.Installments, oi)
			if err != nil {
				return fmt.Errorf("insert fee option %s: %w", o.ID, err)
			}
			options++
		}
	}
	log.Info().Int("gateways", len(gateways)).Int("options", options).Msg("inserted catalog")

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed data: %w", err)
	}

	log.Info().Msg("seed data generation complete")
	return nil
}
