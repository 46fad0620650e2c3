package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Esw4r/surplus-sync/internal/http/handlers"
	"github.com/Esw4r/surplus-sync/internal/middleware"
)

// Options carries the router's middleware configuration.
type Options struct {
	AllowedOrigins  []string
	RateLimitPerMin int
	DefaultLocale   string
	CountryLookup   middleware.CountryLookup
	Logger          zerolog.Logger
}

// NewRouter assembles the HTTP surface: REST API, health, docs, and the
// WebSocket endpoint for live map updates.
func NewRouter(app *handlers.App, wsHandler stdhttp.Handler, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.I18N(opts.DefaultLocale, opts.CountryLookup))
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
	}

	r.Get("/", app.Root)
	r.Get("/health", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/donations", func(r chi.Router) {
			r.Post("/", app.DonationsCreate)
			r.Get("/", app.DonationsList)
			r.Get("/available", app.DonationsAvailable)
			r.Delete("/cleanup", app.DonationsCleanup)
			r.Get("/{id}", app.DonationGet)
			r.Patch("/{id}/status", app.DonationStatusUpdate)
		})
		r.Get("/map/markers", app.MapMarkers)
	})

	r.Get("/v1/openapi.json", app.OpenAPIJSON)
	r.Get("/docs", app.OpenAPIDocs)

	r.Get("/ws", wsHandler.ServeHTTP)

	return r
}
