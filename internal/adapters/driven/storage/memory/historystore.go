package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu          sync.RWMutex
	invocations map[string]domain.Invocation
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		invocations: make(map[string]domain.Invocation),
	}
}

// Save records an invocation, replacing one with the same ID.
func (s *HistoryStore) Save(_ context.Context, inv domain.Invocation) error {
	if inv.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	inv.Args = append([]string(nil), inv.Args...)
	s.invocations[inv.ID] = inv
	return nil
}

// Get retrieves an invocation by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.Invocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invocations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &inv, nil
}

// List returns the most recent invocations, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.Invocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Invocation, 0, len(s.invocations))
	for _, inv := range s.invocations {
		result = append(result, inv)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].StartedAt.Equal(result[j].StartedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].StartedAt.After(result[j].StartedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Clear removes all invocations.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invocations = make(map[string]domain.Invocation)
	return nil
}
