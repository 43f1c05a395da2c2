package router

import (
	"net/http"

	_ "hotel/docs"
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/guest"
	"hotel/internal/handlers/room"
	"hotel/shared/metrics"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Guest   guest.Handler
	Room    room.Handler
	Booking booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	Auth           middleware.Auth
	Metrics        metrics.Metrics
}

// SetupRoutes mounts the API under /v1 and the operational endpoints at the
// root. health reports readiness and is supplied by the server. Token issuing
// sits outside the authenticated group since it checks the API key itself.
func (r *Router) SetupRoutes(router chi.Router, health http.HandlerFunc) {
	router.Use(chiMiddleware.RequestID, chiMiddleware.RealIP, chiMiddleware.Recoverer)
	router.Use(r.App.CORS(), r.App.Tracing, r.App.Metrics)

	router.Get("/health", health)
	router.Method(http.MethodGet, "/metrics", r.Metrics.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.Auth.Authenticate)

			r.DomainHandlers.Guest.Router(protected)
			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, auth middleware.Auth, m metrics.Metrics) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		Auth:           auth,
		Metrics:        m,
	}
}
