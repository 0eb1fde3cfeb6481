// Package repository implements metastore persistence over SQLite.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"commerce-lake/internal/domain"
)

// Compile-time check.
var _ domain.RunRepository = (*RunRepo)(nil)

// RunRepo implements RunRepository using SQLite.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo creates a new RunRepo.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// Create inserts a new enrichment run in its initial state.
func (r *RunRepo) Create(ctx context.Context, run *domain.EnrichmentRun) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO enrichment_runs
			(id, entity_type, partition_date, status, row_count, column_count, error, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, string(run.Entity), run.Date.Format("2006-01-02"),
		string(run.Status), run.RowCount, run.ColumnCount, run.Error, run.StartedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert enrichment run: %w", err)
	}
	return nil
}

// Finish records the terminal state of a run.
func (r *RunRepo) Finish(ctx context.Context, id string, status domain.RunStatus, rowCount, columnCount int, errMsg string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE enrichment_runs
		SET status = ?, row_count = ?, column_count = ?, error = ?, finished_at = ?
		WHERE id = ?`,
		string(status), rowCount, columnCount, errMsg, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("finish enrichment run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish enrichment run: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound("enrichment run %q not found", id)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (r *RunRepo) List(ctx context.Context, limit int) ([]domain.EnrichmentRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, entity_type, partition_date, status, row_count, column_count, error, started_at, finished_at
		FROM enrichment_runs
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list enrichment runs: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.EnrichmentRun
	for rows.Next() {
		var (
			run      domain.EnrichmentRun
			entity   string
			date     string
			status   string
			finished sql.NullTime
		)
		if err := rows.Scan(&run.ID, &entity, &date, &status,
			&run.RowCount, &run.ColumnCount, &run.Error, &run.StartedAt, &finished); err != nil {
			return nil, fmt.Errorf("scan enrichment run: %w", err)
		}
		run.Entity = domain.EntityType(entity)
		run.Status = domain.RunStatus(status)
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("parse partition date %q: %w", date, err)
		}
		run.Date = day
		if finished.Valid {
			t := finished.Time
			run.FinishedAt = &t
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
