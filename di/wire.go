//go:build wireinject
// +build wireinject

package di

import (
	"eventrix/config"
	"eventrix/infras/jwt"
	"eventrix/infras/otel"
	"eventrix/infras/postgres"
	"eventrix/infras/redis"
	"eventrix/permissions"
	"eventrix/shared/cache"
	"eventrix/transport/http"
	"eventrix/transport/http/middleware"
	"eventrix/transport/http/router"

	"github.com/google/wire"

	accountRepository "eventrix/internal/domains/account/repository"
	authService "eventrix/internal/domains/account/service"
	bookingRepository "eventrix/internal/domains/booking/repository"
	bookingService "eventrix/internal/domains/booking/service"
	checkinRepository "eventrix/internal/domains/checkin/repository"
	checkinService "eventrix/internal/domains/checkin/service"
	equipmentRepository "eventrix/internal/domains/equipment/repository"
	equipmentService "eventrix/internal/domains/equipment/service"
	eventRepository "eventrix/internal/domains/event/repository"
	eventService "eventrix/internal/domains/event/service"
	userRepository "eventrix/internal/domains/user/repository"
	userService "eventrix/internal/domains/user/service"
	viewService "eventrix/internal/domains/view/service"

	authHandler "eventrix/internal/handlers/auth"
	bookingHandler "eventrix/internal/handlers/booking"
	checkinHandler "eventrix/internal/handlers/checkin"
	equipmentHandler "eventrix/internal/handlers/equipment"
	eventHandler "eventrix/internal/handlers/event"
	userHandler "eventrix/internal/handlers/user"
	viewHandler "eventrix/internal/handlers/view"
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
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	accountRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var equipmentDomain = wire.NewSet(
	equipmentRepository.New,
	equipmentService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var checkinDomain = wire.NewSet(
	checkinRepository.New,
	checkinService.New,
)

var viewDomain = wire.NewSet(
	viewService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	eventDomain,
	equipmentDomain,
	bookingDomain,
	checkinDomain,
	viewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	eventHandler.New,
	equipmentHandler.New,
	bookingHandler.New,
	checkinHandler.New,
	viewHandler.New,
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
