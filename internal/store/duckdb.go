// Package store provides PartitionStore implementations: a DuckDB-backed
// parquet store for the data plane and an in-memory store for tests.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"commerce-lake/internal/domain"
)

// Stage names partition the data directory into pipeline stages.
const (
	StageClean    = "clean"
	StageEnriched = "enriched"
)

// DuckDBStore reads and writes per-day parquet partitions through a DuckDB
// connection. Partitions live at <root>/<stage>/<entity>/<year>/<month>/<day>.parquet.
type DuckDBStore struct {
	db    *sql.DB
	root  string
	stage string
}

var _ domain.PartitionStore = (*DuckDBStore)(nil)

// NewDuckDBStore creates a store rooted at dir for the given stage.
func NewDuckDBStore(db *sql.DB, dir, stage string) *DuckDBStore {
	return &DuckDBStore{db: db, root: dir, stage: stage}
}

func (s *DuckDBStore) path(entity domain.EntityType, day time.Time) string {
	return filepath.Join(s.root, s.stage, string(entity),
		strconv.Itoa(day.Year()), strconv.Itoa(int(day.Month())),
		fmt.Sprintf("%d.parquet", day.Day()))
}

// Exists reports whether the partition file is present.
func (s *DuckDBStore) Exists(_ context.Context, entity domain.EntityType, day time.Time) (bool, error) {
	_, err := os.Stat(s.path(entity, day))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("stat partition: %w", err)
}

// Read loads the partition into a Table, or returns a NotFoundError when
// the partition file does not exist.
func (s *DuckDBStore) Read(ctx context.Context, entity domain.EntityType, day time.Time) (*domain.Table, error) {
	path := s.path(entity, day)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, domain.ErrNotFound("partition %s/%s not found at %s", entity, day.Format("2006-01-02"), path)
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM read_parquet(%s)", quoteLiteral(path)))
	if err != nil {
		return nil, fmt.Errorf("read partition %s: %w", path, err)
	}
	defer rows.Close() //nolint:errcheck

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("partition columns: %w", err)
	}

	t := domain.NewTable(cols...)
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan partition row: %w", err)
		}
		r := make(domain.Row, len(cols))
		for i, c := range cols {
			r[c] = normalizeScalar(vals[i])
		}
		t.AppendRow(r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate partition: %w", err)
	}
	return t, nil
}

// Write materializes the table as a parquet partition. The file is written
// to a temporary sibling and renamed, so an existing partition is replaced
// atomically from the caller's point of view.
func (s *DuckDBStore) Write(ctx context.Context, entity domain.EntityType, day time.Time, t *domain.Table) error {
	path := s.path(entity, day)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create partition dir: %w", err)
	}

	// Temp tables are connection-scoped in DuckDB, so pin one connection
	// for the whole staging + copy sequence.
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close() //nolint:errcheck

	staging := "staging_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	cols := t.Columns()
	if len(cols) == 0 {
		return domain.ErrValidation("cannot write partition %s/%s: table has no columns", entity, day.Format("2006-01-02"))
	}

	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = fmt.Sprintf("%s %s", quoteIdent(c), duckType(t.Column(c)))
	}
	if _, err := conn.ExecContext(ctx, fmt.Sprintf(
		"CREATE TEMP TABLE %s (%s)", staging, strings.Join(defs, ", "))); err != nil {
		return fmt.Errorf("create staging table: %w", err)
	}
	defer conn.ExecContext(context.WithoutCancel(ctx), "DROP TABLE IF EXISTS "+staging) //nolint:errcheck

	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",") + ")"
	insert := fmt.Sprintf("INSERT INTO %s VALUES %s", staging, placeholders)
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		args := make([]any, len(cols))
		for j, c := range cols {
			args[j] = row[c]
		}
		if _, err := conn.ExecContext(ctx, insert, args...); err != nil {
			return fmt.Errorf("stage row %d: %w", i, err)
		}
	}

	tmp := path + ".tmp"
	if _, err := conn.ExecContext(ctx, fmt.Sprintf(
		"COPY (SELECT * FROM %s) TO %s (FORMAT PARQUET)", staging, quoteLiteral(tmp))); err != nil {
		return fmt.Errorf("copy partition to parquet: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("publish partition: %w", err)
	}
	return nil
}

// duckType picks a DuckDB column type from the first non-nil value.
func duckType(values []any) string {
	for _, v := range values {
		switch v.(type) {
		case int64, int32, int:
			return "BIGINT"
		case float64, float32:
			return "DOUBLE"
		case bool:
			return "BOOLEAN"
		case time.Time:
			return "TIMESTAMP"
		case string:
			return "VARCHAR"
		case nil:
			continue
		}
	}
	return "VARCHAR"
}

// normalizeScalar maps driver-returned values onto the Table scalar set.
func normalizeScalar(v any) any {
	switch x := v.(type) {
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return float64(x)
	case []byte:
		return string(x)
	default:
		return v
	}
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
