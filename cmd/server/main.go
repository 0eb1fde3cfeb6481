// Command server runs the commerce lake HTTP API.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/mattn/go-sqlite3"

	"commerce-lake/internal/app"
	"commerce-lake/internal/config"
	internaldb "commerce-lake/internal/db"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	}
	logger := slog.New(handler)
	for _, w := range cfg.Warnings {
		logger.Warn(w)
	}

	duckDB, err := sql.Open("duckdb", "")
	if err != nil {
		return err
	}
	defer duckDB.Close() //nolint:errcheck

	metaDB, err := internaldb.OpenSQLite(cfg.MetaDBPath)
	if err != nil {
		return err
	}
	defer metaDB.Close() //nolint:errcheck
	if err := internaldb.RunMigrations(metaDB); err != nil {
		return err
	}

	a := app.New(app.Deps{Cfg: cfg, DuckDB: duckDB, MetaDB: metaDB, Logger: logger})
	if a.Scheduler != nil {
		if err := a.Scheduler.Start(); err != nil {
			return err
		}
		defer a.Scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr, "data_dir", cfg.DataDir)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
