package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lf3m/fee-comparator/internal/catalog"
	"github.com/lf3m/fee-comparator/internal/comparison"
	"github.com/lf3m/fee-comparator/internal/config"
	"github.com/lf3m/fee-comparator/internal/model"
	"github.com/lf3m/fee-comparator/internal/terminal"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	config.LoadEnv()
	cfg := config.Load()
	zerolog.SetGlobalLevel(cfg.Level())

	amount := flag.String("amount", cfg.DefaultAmount, "initial amount, e.g. 99.90 or 99,90")
	methodFlag := flag.String("method", cfg.DefaultMethod, "initial payment method: pix, credit_card, debit_card or boleto")
	flag.Parse()

	method, err := model.ParsePaymentMethod(*methodFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid payment method")
	}

	cat, err := catalog.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}

	session := comparison.NewSession(cat.Gateways())
	if err := terminal.NewLoop(session, *amount, method).Run(os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("read input")
	}
}
