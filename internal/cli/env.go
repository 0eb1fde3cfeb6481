package cli

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"commerce-lake/internal/db"
	"commerce-lake/internal/db/repository"
	"commerce-lake/internal/domain"
	"commerce-lake/internal/service/analytics"
	"commerce-lake/internal/service/enrich"
	"commerce-lake/internal/store"
)

// env holds the stores and services a command needs, opened from the global
// flags. Close releases the database handles.
type env struct {
	enrich    *enrich.Service
	analytics *analytics.Service
	runs      domain.RunRepository // nil when --meta-db is unset
	logger    *slog.Logger

	duckDB *sql.DB
	metaDB *sql.DB
}

func openEnv(opts *globalOptions) (*env, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(opts.logLevel),
	}))

	duckDB, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	e := &env{logger: logger, duckDB: duckDB}

	if opts.metaDB != "" {
		metaDB, err := db.OpenSQLite(opts.metaDB)
		if err != nil {
			duckDB.Close() //nolint:errcheck
			return nil, err
		}
		if err := db.RunMigrations(metaDB); err != nil {
			metaDB.Close() //nolint:errcheck
			duckDB.Close() //nolint:errcheck
			return nil, err
		}
		e.metaDB = metaDB
		e.runs = repository.NewRunRepo(metaDB)
	}

	clean := store.NewDuckDBStore(duckDB, opts.dataDir, store.StageClean)
	enriched := store.NewDuckDBStore(duckDB, opts.dataDir, store.StageEnriched)
	e.enrich = enrich.NewService(clean, enriched, e.runs, logger)
	e.analytics = analytics.NewService(enriched, logger)
	return e, nil
}

func (e *env) Close() {
	if e.metaDB != nil {
		e.metaDB.Close() //nolint:errcheck
	}
	e.duckDB.Close() //nolint:errcheck
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
