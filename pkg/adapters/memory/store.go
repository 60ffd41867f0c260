// Package memory provides an in-process implementation of ports.RecordStore.
package memory

import (
	"context"
	"sync"

	"github.com/nithin218/mindmate/pkg/domain"
)

// Store implements ports.RecordStore in memory. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]*domain.Record
}

// NewStore creates a new in-memory record store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Record),
	}
}

// Save persists a copy of the record so the caller cannot mutate stored data.
func (s *Store) Save(_ context.Context, record *domain.Record) error {
	copied := *record
	copied.Trace = append([]domain.TraceEntry(nil), record.Trace...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[record.ID] = &copied
	return nil
}

// Load retrieves a record by ID.
func (s *Store) Load(_ context.Context, id string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.data[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	ret := *record
	ret.Trace = append([]domain.TraceEntry(nil), record.Trace...)
	return &ret, nil
}

// List returns the stored record IDs.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
