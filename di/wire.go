//go:build wireinject
// +build wireinject

package di

import (
	"stayadmin/config"
	"stayadmin/infras/jwt"
	"stayadmin/infras/kafka"
	"stayadmin/infras/otel"
	"stayadmin/infras/postgres"
	"stayadmin/infras/redis"
	"stayadmin/infras/s3"
	"stayadmin/permissions"
	"stayadmin/shared/cache"
	"stayadmin/transport/http"
	"stayadmin/transport/http/middleware"
	"stayadmin/transport/http/router"

	"github.com/google/wire"

	analyticsService "stayadmin/internal/domains/analytics/service"
	authService "stayadmin/internal/domains/auth/service"
	bookingRepository "stayadmin/internal/domains/booking/repository"
	bookingService "stayadmin/internal/domains/booking/service"
	guestdocService "stayadmin/internal/domains/guestdoc/service"
	invoiceService "stayadmin/internal/domains/invoice/service"
	occupancyService "stayadmin/internal/domains/occupancy/service"

	analyticsHandler "stayadmin/internal/handlers/analytics"
	authHandler "stayadmin/internal/handlers/auth"
	bookingHandler "stayadmin/internal/handlers/booking"
	guestdocHandler "stayadmin/internal/handlers/guestdoc"
	invoiceHandler "stayadmin/internal/handlers/invoice"
	occupancyHandler "stayadmin/internal/handlers/occupancy"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var guestDocDomain = wire.NewSet(
	guestdocService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var reportingDomains = wire.NewSet(
	analyticsService.New,
	occupancyService.New,
	invoiceService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	guestDocDomain,
	authDomain,
	reportingDomains,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	analyticsHandler.New,
	occupancyHandler.New,
	invoiceHandler.New,
	guestdocHandler.New,
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
