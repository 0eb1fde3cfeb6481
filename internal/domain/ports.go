package domain

import (
	"context"
	"time"
)

// PartitionStore is the abstract per-(entity type, date) table store.
// Read fails with a NotFoundError when the partition does not exist; Write
// overwrites any existing partition atomically from the caller's point of
// view, creating intermediate structure as needed.
type PartitionStore interface {
	Read(ctx context.Context, entity EntityType, day time.Time) (*Table, error)
	Write(ctx context.Context, entity EntityType, day time.Time, t *Table) error
	Exists(ctx context.Context, entity EntityType, day time.Time) (bool, error)
}

// RunRepository persists enrichment run history in the metastore.
type RunRepository interface {
	Create(ctx context.Context, run *EnrichmentRun) error
	Finish(ctx context.Context, id string, status RunStatus, rowCount, columnCount int, errMsg string) error
	List(ctx context.Context, limit int) ([]EnrichmentRun, error)
}
