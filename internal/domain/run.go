package domain

import "time"

// RunStatus is the lifecycle state of an enrichment run.
type RunStatus string

const (
	RunRunning   RunStatus = "running"
	RunSucceeded RunStatus = "succeeded"
	RunSkipped   RunStatus = "skipped"
	RunFailed    RunStatus = "failed"
)

// EnrichmentRun records one enrichment attempt for a (entity, date) partition.
type EnrichmentRun struct {
	ID          string     `json:"id"`
	Entity      EntityType `json:"entity"`
	Date        time.Time  `json:"date"`
	Status      RunStatus  `json:"status"`
	RowCount    int        `json:"row_count"`
	ColumnCount int        `json:"column_count"`
	Error       string     `json:"error,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}
