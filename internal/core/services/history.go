package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driven"
	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes recorded invocations.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a history service.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns up to limit invocations, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.Invocation, error) {
	invocations, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	return invocations, nil
}

// Get returns one invocation by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Invocation, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// Clear removes all recorded invocations.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
