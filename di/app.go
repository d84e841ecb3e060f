package di

import (
	"context"
	"fmt"
	"hostel/infras/kafka"
	"hostel/infras/otel"
	foodService "hostel/internal/domains/food/service"
	roomService "hostel/internal/domains/room/service"
	"hostel/internal/domains/store"
	"hostel/transport/http"

	"github.com/rs/zerolog/log"
)

// App is the assembled service with the resources that outlive a request.
type App struct {
	HTTP      *http.HTTP
	Store     store.Store
	Publisher kafka.Publisher
	Otel      otel.Otel
	Rooms     roomService.Room
	FoodPlans foodService.FoodPlan
}

// Seed writes the default catalog for every collection that was never written.
func (a *App) Seed(ctx context.Context) error {
	if err := a.Rooms.Seed(ctx); err != nil {
		return fmt.Errorf("seeding rooms: %w", err)
	}

	if err := a.FoodPlans.Seed(ctx); err != nil {
		return fmt.Errorf("seeding food plans: %w", err)
	}

	return nil
}

// Close releases the store, the event publisher and the tracer.
func (a *App) Close(ctx context.Context) {
	if err := a.Publisher.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close event publisher")
	}

	if err := a.Store.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close store")
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
