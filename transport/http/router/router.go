package router

import (
	"eventrix/internal/handlers/auth"
	"eventrix/internal/handlers/booking"
	"eventrix/internal/handlers/checkin"
	"eventrix/internal/handlers/equipment"
	"eventrix/internal/handlers/event"
	"eventrix/internal/handlers/user"
	"eventrix/internal/handlers/view"
	"eventrix/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	User      user.Handler
	Event     event.Handler
	Equipment equipment.Handler
	Booking   booking.Handler
	CheckIn   checkin.Handler
	View      view.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	middleware     middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.middleware.APIKey)
		routerGroup.Use(r.middleware.Auth)
		routerGroup.Use(r.middleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Equipment.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.CheckIn.Router(routerGroup)
		r.DomainHandlers.View.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		middleware:     authRole,
	}
}
