package router

import (
	"agency/internal/handlers/admin"
	"agency/internal/handlers/auth"
	"agency/internal/handlers/consultation"
	"agency/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Consultation consultation.Handler
	Admin        admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Group(func(public chi.Router) {
			public.Use(r.App.RateLimit())

			r.DomainHandlers.Auth.Router(public)
			r.DomainHandlers.Consultation.Router(public)
		})

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			adminGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

			r.DomainHandlers.Auth.AdminRouter(adminGroup)
			r.DomainHandlers.Admin.Router(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
