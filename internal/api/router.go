package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"commerce-lake/internal/middleware"
)

// RouterConfig carries the middleware settings the router needs.
type RouterConfig struct {
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// NewRouter builds the chi router for the API.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	r.Get("/healthz", h.HandleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/enrich/{date}", h.HandleEnrich)
		r.Get("/runs", h.HandleListRuns)
		r.Route("/analytics", func(r chi.Router) {
			r.Post("/stock/{date}", h.HandleStock)
			r.Get("/new-customers", h.HandleNewCustomers)
			r.Get("/revenue/{year}/{month}", h.HandleMonthlyRevenue)
			r.Get("/summary/{date}", h.HandleDailySummary)
			r.Post("/summary/{date}", h.HandleDailySummary)
		})
	})
	return r
}
