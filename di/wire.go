//go:build wireinject
// +build wireinject

package di

import (
	"agency/config"
	"agency/infras/email"
	"agency/infras/jwt"
	"agency/infras/kafka"
	"agency/infras/metrics"
	"agency/infras/otel"
	"agency/infras/postgres"
	"agency/infras/redis"
	"agency/infras/s3"
	"agency/infras/zoom"
	"agency/permissions"
	"agency/shared/cache"
	"agency/shared/lock"
	"agency/transport/http"
	"agency/transport/http/middleware"
	"agency/transport/http/router"

	authService "agency/internal/domains/auth/service"
	availabilityService "agency/internal/domains/availability/service"
	consultationRepository "agency/internal/domains/consultation/repository"
	consultationService "agency/internal/domains/consultation/service"
	slotRepository "agency/internal/domains/slot/repository"
	slotService "agency/internal/domains/slot/service"

	adminHandler "agency/internal/handlers/admin"
	authHandler "agency/internal/handlers/auth"
	consultationHandler "agency/internal/handlers/consultation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	metrics.New,
	kafka.New,
	s3.New,
	email.New,
	zoom.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lock.NewRedisLock,
	provideRunner,
)

var slotDomain = wire.NewSet(
	slotRepository.NewTimeSlot,
	slotRepository.NewBlockedDate,
	slotService.New,
)

var availabilityDomain = wire.NewSet(
	wire.Bind(new(availabilityService.BookingReader), new(consultationRepository.Consultation)),
	availabilityService.New,
)

var consultationDomain = wire.NewSet(
	consultationRepository.New,
	consultationService.NewLedger,
	consultationService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	slotDomain,
	availabilityDomain,
	consultationDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	consultationHandler.New,
	adminHandler.New,
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

// InitializeAuth builds the token issuer used by cmd/token.
func InitializeAuth() authService.Auth {
	wire.Build(
		configurations,
		otel.New,
		jwt.New,
		authDomain,
	)

	return nil
}
