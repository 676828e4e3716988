// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"stayadmin/config"
	"stayadmin/infras/jwt"
	"stayadmin/infras/kafka"
	"stayadmin/infras/otel"
	"stayadmin/infras/postgres"
	"stayadmin/infras/redis"
	"stayadmin/infras/s3"
	service4 "stayadmin/internal/domains/analytics/service"
	"stayadmin/internal/domains/auth/service"
	"stayadmin/internal/domains/booking/repository"
	service3 "stayadmin/internal/domains/booking/service"
	service2 "stayadmin/internal/domains/guestdoc/service"
	service6 "stayadmin/internal/domains/invoice/service"
	service5 "stayadmin/internal/domains/occupancy/service"
	"stayadmin/internal/handlers/analytics"
	"stayadmin/internal/handlers/auth"
	"stayadmin/internal/handlers/booking"
	"stayadmin/internal/handlers/guestdoc"
	"stayadmin/internal/handlers/invoice"
	"stayadmin/internal/handlers/occupancy"
	"stayadmin/permissions"
	"stayadmin/shared/cache"
	"stayadmin/transport/http"
	"stayadmin/transport/http/middleware"
	"stayadmin/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	otelOtel := otel.New(configConfig)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	connection := postgres.New(configConfig)
	repositoryBooking := repository.New(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	guestDoc := service2.New(configConfig, otelOtel, s3S3)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service3.New(repositoryBooking, guestDoc, configConfig, redisCache, kafkaClient, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	serviceAnalytics := service4.New(repositoryBooking, configConfig, redisCache, otelOtel)
	analyticsHandler := analytics.New(serviceAnalytics, otelOtel)
	serviceOccupancy := service5.New(repositoryBooking, configConfig, redisCache, otelOtel)
	occupancyHandler := occupancy.New(serviceOccupancy, otelOtel)
	serviceInvoice := service6.New(repositoryBooking, otelOtel)
	invoiceHandler := invoice.New(serviceInvoice, otelOtel)
	guestdocHandler := guestdoc.New(guestDoc, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:      handler,
		Booking:   bookingHandler,
		Analytics: analyticsHandler,
		Occupancy: occupancyHandler,
		Invoice:   invoiceHandler,
		GuestDoc:  guestdocHandler,
	}
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	middlewareAuth := middleware.NewAuthMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	routerRouter := router.New(domainHandlers, appMiddleware, middlewareAuth)
	httpHTTP := http.New(configConfig, routerRouter)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, s3.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthMiddleware, permissions.Get)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var bookingDomain = wire.NewSet(repository.New, service3.New)

var guestDocDomain = wire.NewSet(service2.New)

var authDomain = wire.NewSet(service.New)

var reportingDomains = wire.NewSet(service4.New, service5.New, service6.New)

var domains = wire.NewSet(
	bookingDomain,
	guestDocDomain,
	authDomain,
	reportingDomains,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, booking.New, analytics.New, occupancy.New, invoice.New, guestdoc.New, router.New)
