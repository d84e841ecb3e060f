//go:build wireinject
// +build wireinject

package di

import (
	"hostel/config"
	"hostel/infras/kafka"
	"hostel/infras/otel"
	"hostel/infras/s3"
	"hostel/internal/domains/store"
	adminHandler "hostel/internal/handlers/admin"
	authHandler "hostel/internal/handlers/auth"
	bookingHandler "hostel/internal/handlers/booking"
	foodHandler "hostel/internal/handlers/food"
	roomHandler "hostel/internal/handlers/room"
	"hostel/transport/http"
	"hostel/transport/http/middleware"
	"hostel/transport/http/router"

	"github.com/google/wire"

	authService "hostel/internal/domains/auth/service"
	bookingRepository "hostel/internal/domains/booking/repository"
	bookingService "hostel/internal/domains/booking/service"
	dashboardService "hostel/internal/domains/dashboard/service"
	foodRepository "hostel/internal/domains/food/repository"
	foodService "hostel/internal/domains/food/service"
	roomRepository "hostel/internal/domains/room/repository"
	roomService "hostel/internal/domains/room/service"
	sessionRepository "hostel/internal/domains/session/repository"
	snapshotService "hostel/internal/domains/snapshot/service"
	userRepository "hostel/internal/domains/user/repository"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	store.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var repositories = wire.NewSet(
	roomRepository.New,
	foodRepository.New,
	bookingRepository.New,
	userRepository.New,
	sessionRepository.New,
)

var domains = wire.NewSet(
	roomService.New,
	foodService.New,
	authService.New,
	bookingService.New,
	dashboardService.New,
	snapshotService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	foodHandler.New,
	bookingHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		repositories,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
