package main

import (
	"context"
	"hostel/config"
	"hostel/di"
	"hostel/helper"
	"hostel/shared/constant"
	"hostel/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 10 * time.Second

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.Store.Driver == constant.StoreDriverPostgres && cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	app := di.InitializeService()

	if cfg.App.SeedCatalog {
		if err := app.Seed(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed catalog")
		}
	}

	app.HTTP.Serve()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	app.Close(ctx)
}
