package handler

import (
	"context"
	"hostel/config"
	"hostel/di"
	"hostel/shared/logger"
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	app  *di.App
	once sync.Once
)

// Handler is the serverless entrypoint. The service is built on the first request and reused.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()

		if cfg.App.SeedCatalog {
			if err := app.Seed(context.Background()); err != nil {
				log.Error().Err(err).Msg("Failed to seed catalog")
			}
		}
	})

	app.HTTP.ServeHTTP(w, r)
}
