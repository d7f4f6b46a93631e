//go:build wireinject
// +build wireinject

package di

import (
	"github.com/ah01567/Bookini/config"
	"github.com/ah01567/Bookini/infras/jwt"
	"github.com/ah01567/Bookini/infras/kafka"
	"github.com/ah01567/Bookini/infras/otel"
	"github.com/ah01567/Bookini/infras/postgres"
	"github.com/ah01567/Bookini/infras/redis"
	"github.com/ah01567/Bookini/infras/s3"
	"github.com/ah01567/Bookini/internal/workers"
	"github.com/ah01567/Bookini/permissions"
	"github.com/ah01567/Bookini/shared/cache"
	"github.com/ah01567/Bookini/transport/http"
	"github.com/ah01567/Bookini/transport/http/middleware"
	"github.com/ah01567/Bookini/transport/http/router"

	authService "github.com/ah01567/Bookini/internal/domains/auth/service"
	destinationService "github.com/ah01567/Bookini/internal/domains/destination/service"
	propertyRepository "github.com/ah01567/Bookini/internal/domains/property/repository"
	propertyService "github.com/ah01567/Bookini/internal/domains/property/service"
	publicationRegistry "github.com/ah01567/Bookini/internal/domains/publication/registry"
	publicationRepository "github.com/ah01567/Bookini/internal/domains/publication/repository"
	publicationService "github.com/ah01567/Bookini/internal/domains/publication/service"
	roomTypeRepository "github.com/ah01567/Bookini/internal/domains/roomtype/repository"
	roomTypeService "github.com/ah01567/Bookini/internal/domains/roomtype/service"
	userRepository "github.com/ah01567/Bookini/internal/domains/user/repository"
	userService "github.com/ah01567/Bookini/internal/domains/user/service"

	authHandler "github.com/ah01567/Bookini/internal/handlers/auth"
	destinationHandler "github.com/ah01567/Bookini/internal/handlers/destination"
	propertyHandler "github.com/ah01567/Bookini/internal/handlers/property"
	publicationHandler "github.com/ah01567/Bookini/internal/handlers/publication"
	roomTypeHandler "github.com/ah01567/Bookini/internal/handlers/roomtype"
	userHandler "github.com/ah01567/Bookini/internal/handlers/user"

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
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var publicationDomain = wire.NewSet(
	publicationRepository.New,
	publicationRegistry.New,
	publicationService.New,
)

var destinationDomain = wire.NewSet(
	destinationService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	propertyDomain,
	roomTypeDomain,
	publicationDomain,
	destinationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	propertyHandler.New,
	publicationHandler.New,
	roomTypeHandler.New,
	destinationHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		workers.NewReaper,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
