package driving

import (
	"context"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// CommandService is the invocation entry point used by transports.
type CommandService interface {
	// Invoke runs a command with untyped text arguments.
	// Each text is converted with domain.Parse before invocation.
	Invoke(ctx context.Context, name string, texts []string) (domain.Value, error)

	// InvokeArgs runs a command with an already typed argument store.
	InvokeArgs(ctx context.Context, name string, args domain.Args) (domain.Value, error)

	// List returns every registered command, sorted by name.
	List() []domain.CommandInfo

	// Describe returns a single command.
	Describe(name string) (*domain.CommandInfo, error)
}

// HistoryService exposes recorded invocations.
type HistoryService interface {
	// Recent returns up to limit invocations, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Invocation, error)

	// Get returns one invocation by ID.
	Get(ctx context.Context, id string) (*domain.Invocation, error)

	// Clear removes all recorded invocations.
	Clear(ctx context.Context) error
}
