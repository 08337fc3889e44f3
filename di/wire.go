//go:build wireinject
// +build wireinject

package di

import (
	"corais/config"
	"corais/infras/kafka"
	"corais/infras/otel"
	"corais/infras/postgres"
	"corais/infras/redis"
	"corais/shared/cache"
	"corais/transport/http"
	"corais/transport/http/middleware"
	"corais/transport/http/router"

	bookingRepository "corais/internal/domains/booking/repository"
	bookingService "corais/internal/domains/booking/service"
	"corais/internal/domains/booking/notify"
	roomRepository "corais/internal/domains/room/repository"
	roomService "corais/internal/domains/room/service"

	bookingHandler "corais/internal/handlers/booking"
	roomHandler "corais/internal/handlers/room"
	siteHandler "corais/internal/handlers/site"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	notify.NewPublisher,
	bookingService.New,
	wire.Bind(new(http.Drainer), new(bookingService.Booking)),
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	siteHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
