package router

import (
	"net/http"
	"stayadmin/internal/handlers/analytics"
	"stayadmin/internal/handlers/auth"
	"stayadmin/internal/handlers/booking"
	"stayadmin/internal/handlers/guestdoc"
	"stayadmin/internal/handlers/invoice"
	"stayadmin/internal/handlers/occupancy"
	"stayadmin/transport/http/middleware"
	"stayadmin/transport/http/response"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Booking   booking.Handler
	Analytics analytics.Handler
	Occupancy occupancy.Handler
	Invoice   invoice.Handler
	GuestDoc  guestdoc.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.CORS)
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.RateLimit())

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusOK, "OK")
	})

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.Auth)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Analytics.Router(routerGroup)
		r.DomainHandlers.Occupancy.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.GuestDoc.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		Auth:           auth,
	}
}
