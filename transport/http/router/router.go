package router

import (
	_ "github.com/ah01567/Bookini/docs"
	"github.com/ah01567/Bookini/internal/handlers/auth"
	"github.com/ah01567/Bookini/internal/handlers/destination"
	"github.com/ah01567/Bookini/internal/handlers/property"
	"github.com/ah01567/Bookini/internal/handlers/publication"
	"github.com/ah01567/Bookini/internal/handlers/roomtype"
	"github.com/ah01567/Bookini/internal/handlers/user"
	"github.com/ah01567/Bookini/transport/http/middleware"

	"github.com/go-chi/chi/v5"

	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Property    property.Handler
	Publication publication.Handler
	RoomType    roomtype.Handler
	Destination destination.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.App.Tracing)
	router.Use(r.App.CORS)
	router.Use(r.App.RateLimit())

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Publication.Router(routerGroup)
		r.DomainHandlers.RoomType.Router(routerGroup)
		r.DomainHandlers.Destination.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
