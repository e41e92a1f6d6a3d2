package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lf3m/fee-comparator/internal/catalog"
	"github.com/lf3m/fee-comparator/internal/config"
	"github.com/lf3m/fee-comparator/internal/database"
	"github.com/lf3m/fee-comparator/internal/handler"
	"github.com/lf3m/fee-comparator/internal/metrics"
	"github.com/lf3m/fee-comparator/internal/repository"
	"github.com/lf3m/fee-comparator/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	config.LoadEnv()
	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.Level())
	gin.SetMode(cfg.GinMode)
	database.MigrationsDir = cfg.MigrationsDir

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		pool   *pgxpool.Pool
		lister service.GatewayLister
		db     handler.Pinger
	)
	if cfg.CatalogSource == service.SourcePostgres {
		var err error
		pool, err = database.NewPool(ctx, cfg.DatabaseURL())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()

		if cfg.AutoMigrate {
			if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
				log.Fatal().Err(err).Msg("failed to run migrations")
			}
			seed, err := catalog.Default()
			if err != nil {
				log.Fatal().Err(err).Msg("failed to load embedded catalog")
			}
			if err := database.SeedData(ctx, pool, seed); err != nil {
				log.Fatal().Err(err).Msg("failed to seed data")
			}
		}
		lister = repository.NewGatewayRepository(pool)
		db = pool
	}

	cat, err := service.LoadCatalog(ctx, cfg.CatalogSource, lister)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	m := metrics.New()
	catalogSvc := service.NewCatalogService(cat)
	m.SetCatalogSize(catalogSvc.GatewayCount(), catalogSvc.OptionCount())

	pages, err := service.NewPageService()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to parse templates")
	}

	router := handler.NewRouter(handler.RouterConfig{
		DB:            db,
		Catalog:       catalogSvc,
		Comparisons:   service.NewComparisonService(cat, m),
		Pages:         pages,
		Metrics:       m,
		DefaultAmount: cfg.DefaultAmount,
		DefaultMethod: cfg.DefaultMethod,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("catalog_source", cfg.CatalogSource).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
