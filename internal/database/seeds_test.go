package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lf3m/fee-comparator/internal/catalog"
)

func TestSeedData(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	MigrationsDir = "file://../../migrations"
	t.Cleanup(func() { MigrationsDir = "file://migrations" })

	dbURL := getTestDBURL()
	pool := getTestPool(t)
	defer pool.Close()

	_ = RollbackMigrations(dbURL)
	require.NoError(t, RunMigrations(dbURL))

	ctx := context.Background()
	cat, err := catalog.Default()
	require.NoError(t, err)

	wantOptions := 0
	for _, g := range cat.Gateways() {
		wantOptions += len(g.SupportedOptions)
	}

	t.Run("seed produces catalog counts", func(t *testing.T) {
		require.NoError(t, SeedData(ctx, pool, cat))

		var gateways, options int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM gateways").Scan(&gateways))
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM fee_options").Scan(&options))
		assert.Equal(t, cat.Len(), gateways)
		assert.Equal(t, wantOptions, options)
	})

	t.Run("idempotency - running twice does not duplicate", func(t *testing.T) {
		require.NoError(t, SeedData(ctx, pool, cat))

		var options int
		require.NoError(t, pool.QueryRow(ctx, "SELECT COUNT(*) FROM fee_options").Scan(&options))
		assert.Equal(t, wantOptions, options)
	})

	t.Run("percentage fees keep their precision", func(t *testing.T) {
		var pct string
		require.NoError(t, pool.QueryRow(ctx,
			"SELECT percentage_fee::text FROM fee_options WHERE id = 'pagbank-credit-card-1x'").Scan(&pct))
		assert.Equal(t, "4.9900", pct)
	})

	_ = RollbackMigrations(dbURL)
}
