package store

import (
	"context"
	"sync"
	"time"

	"commerce-lake/internal/domain"
)

// MemoryStore is an in-memory PartitionStore used in tests and local
// experiments. Tables are cloned on both read and write so callers cannot
// observe each other's mutations.
type MemoryStore struct {
	mu         sync.RWMutex
	partitions map[string]*domain.Table
}

var _ domain.PartitionStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{partitions: make(map[string]*domain.Table)}
}

func partitionKey(entity domain.EntityType, day time.Time) string {
	return string(entity) + "/" + day.Format("2006-01-02")
}

// Read returns a copy of the partition, or a NotFoundError.
func (s *MemoryStore) Read(_ context.Context, entity domain.EntityType, day time.Time) (*domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.partitions[partitionKey(entity, day)]
	if !ok {
		return nil, domain.ErrNotFound("partition %s/%s not found", entity, day.Format("2006-01-02"))
	}
	return t.Clone(), nil
}

// Write stores a copy of the table, replacing any existing partition.
func (s *MemoryStore) Write(_ context.Context, entity domain.EntityType, day time.Time, t *domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partitions[partitionKey(entity, day)] = t.Clone()
	return nil
}

// Exists reports whether the partition has been written.
func (s *MemoryStore) Exists(_ context.Context, entity domain.EntityType, day time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.partitions[partitionKey(entity, day)]
	return ok, nil
}
