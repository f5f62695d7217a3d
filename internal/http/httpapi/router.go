package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/brinkadata/brinkadata-platform/internal/http/handlers"
	"github.com/brinkadata/brinkadata-platform/internal/middleware"
)

// NewRouter builds the API surface. Every route below /me, /properties and
// /admin runs behind the identity middleware; requests without verified
// identity headers never reach a handler.
func NewRouter(app *handlers.App, logger zerolog.Logger, country middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(app.Cfg.CORSOrigins),
		middleware.RateLimit(app.Cfg.RatePerMinute, time.Minute),
		middleware.Origin(country),
	)

	r.Get("/v1/healthz", app.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity)

		r.Route("/me", func(r chi.Router) {
			r.Get("/entitlements", app.Entitlements)
			r.Get("/usage", app.UsageSummary)
		})

		r.Get("/properties", app.ListProperties)

		r.Route("/admin/accounts/{accountID}/subscription", func(r chi.Router) {
			r.Put("/status", app.SetSubscriptionStatus)
			r.Put("/plan", app.SetSubscriptionPlan)
		})
	})

	return r
}
