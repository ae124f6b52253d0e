package driven

import (
	"context"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// HistoryStore persists command invocations.
type HistoryStore interface {
	// Save records an invocation.
	Save(ctx context.Context, inv domain.Invocation) error

	// Get retrieves an invocation by ID.
	Get(ctx context.Context, id string) (*domain.Invocation, error)

	// List returns the most recent invocations, newest first.
	// A limit of zero or less returns all invocations.
	List(ctx context.Context, limit int) ([]domain.Invocation, error)

	// Clear removes all invocations.
	Clear(ctx context.Context) error
}
