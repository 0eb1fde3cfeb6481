package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "commerce-lake/internal/db"
	"commerce-lake/internal/domain"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := internaldb.OpenSQLite(filepath.Join(t.TempDir(), "meta.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() }) //nolint:errcheck
	require.NoError(t, internaldb.RunMigrations(db))
	return db
}

func newRun(id string, started time.Time) *domain.EnrichmentRun {
	return &domain.EnrichmentRun{
		ID:        id,
		Entity:    domain.EntityOrders,
		Date:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:    domain.RunRunning,
		StartedAt: started,
	}
}

func TestRunRepoCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewRunRepo(testDB(t))

	started := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newRun("run-1", started)))
	require.NoError(t, repo.Create(ctx, newRun("run-2", started.Add(time.Minute))))

	runs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "run-2", runs[0].ID, "newest run first")
	assert.Equal(t, "run-1", runs[1].ID)
	assert.Equal(t, domain.EntityOrders, runs[0].Entity)
	assert.Equal(t, domain.RunRunning, runs[0].Status)
	assert.True(t, runs[1].Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Nil(t, runs[0].FinishedAt)
}

func TestRunRepoFinish(t *testing.T) {
	ctx := context.Background()
	repo := NewRunRepo(testDB(t))

	require.NoError(t, repo.Create(ctx, newRun("run-1", time.Now().UTC())))
	require.NoError(t, repo.Finish(ctx, "run-1", domain.RunSucceeded, 42, 30, ""))

	runs, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	assert.Equal(t, domain.RunSucceeded, runs[0].Status)
	assert.Equal(t, 42, runs[0].RowCount)
	assert.Equal(t, 30, runs[0].ColumnCount)
	assert.NotNil(t, runs[0].FinishedAt)
}

func TestRunRepoFinishUnknownRun(t *testing.T) {
	ctx := context.Background()
	repo := NewRunRepo(testDB(t))

	err := repo.Finish(ctx, "no-such-run", domain.RunFailed, 0, 0, "boom")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRunRepoListDefaultLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewRunRepo(testDB(t))

	runs, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
