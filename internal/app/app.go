// Package app provides application-level wiring for the commerce lake.
package app

import (
	"database/sql"
	"log/slog"
	"net/http"

	"commerce-lake/internal/api"
	"commerce-lake/internal/config"
	"commerce-lake/internal/db/repository"
	"commerce-lake/internal/service/analytics"
	"commerce-lake/internal/service/enrich"
	"commerce-lake/internal/store"
)

// Deps holds the external dependencies main() must provide: database
// handles, config, and the logger.
type Deps struct {
	Cfg    *config.Config
	DuckDB *sql.DB
	MetaDB *sql.DB
	Logger *slog.Logger
}

// App groups the wired services, router, and optional scheduler.
type App struct {
	Enrich    *enrich.Service
	Analytics *analytics.Service
	Router    http.Handler
	Scheduler *enrich.Scheduler // nil when no schedule configured
}

// New wires stores, repositories, services, and the HTTP router.
func New(deps Deps) *App {
	clean := store.NewDuckDBStore(deps.DuckDB, deps.Cfg.DataDir, store.StageClean)
	enriched := store.NewDuckDBStore(deps.DuckDB, deps.Cfg.DataDir, store.StageEnriched)
	runs := repository.NewRunRepo(deps.MetaDB)

	enrichSvc := enrich.NewService(clean, enriched, runs, deps.Logger)
	analyticsSvc := analytics.NewService(enriched, deps.Logger)

	handler := api.NewHandler(enrichSvc, analyticsSvc, runs, deps.Logger)
	router := api.NewRouter(handler, api.RouterConfig{
		CORSAllowedOrigins: deps.Cfg.CORSAllowedOrigins,
		RateLimitRPS:       deps.Cfg.RateLimitRPS,
		RateLimitBurst:     deps.Cfg.RateLimitBurst,
	})

	a := &App{
		Enrich:    enrichSvc,
		Analytics: analyticsSvc,
		Router:    router,
	}
	if deps.Cfg.EnrichSchedule != "" {
		a.Scheduler = enrich.NewScheduler(enrichSvc, deps.Cfg.EnrichSchedule, deps.Logger)
	}
	return a
}
