package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driven"
	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
	"github.com/custodia-labs/dsctl/internal/logger"
)

// Ensure CommandService implements the interface.
var _ driving.CommandService = (*CommandService)(nil)

// CommandService is the invocation path transports use. It turns text into
// an argument store, applies throttling, delegates to the registry and
// records the outcome.
type CommandService struct {
	registry *CommandRegistry
	history  driven.HistoryStore
	limiter  *RateLimiter
}

// NewCommandService creates a command service.
// history and limiter are optional; nil disables recording and throttling.
func NewCommandService(
	registry *CommandRegistry,
	history driven.HistoryStore,
	limiter *RateLimiter,
) *CommandService {
	return &CommandService{
		registry: registry,
		history:  history,
		limiter:  limiter,
	}
}

// Invoke parses texts into values and runs the command.
func (s *CommandService) Invoke(ctx context.Context, name string, texts []string) (domain.Value, error) {
	return s.InvokeArgs(ctx, name, domain.ParseArgs(texts...))
}

// InvokeArgs runs the command against args. The registry's result or error
// is returned unchanged.
func (s *CommandService) InvokeArgs(ctx context.Context, name string, args domain.Args) (domain.Value, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			logger.Warn("invoke %s: %v", name, err)
			return domain.Nil, err
		}
	}

	started := time.Now()
	value, err := s.registry.Invoke(name, args)
	elapsed := time.Since(started)

	if err != nil {
		logger.Debug("invoke %s with %d arg(s) failed after %s: %v", name, args.Len(), elapsed, err)
	} else {
		logger.Debug("invoke %s with %d arg(s) returned %s in %s", name, args.Len(), value.Type(), elapsed)
	}

	s.record(ctx, name, args, value, err, started, elapsed)
	return value, err
}

// record saves the invocation. History failures never fail the invocation.
func (s *CommandService) record(
	ctx context.Context,
	name string,
	args domain.Args,
	value domain.Value,
	invokeErr error,
	started time.Time,
	elapsed time.Duration,
) {
	if s.history == nil {
		return
	}

	inv := domain.Invocation{
		ID:         uuid.New().String(),
		Command:    name,
		Args:       args.Strings(),
		ResultType: value.Type(),
		Result:     value.String(),
		StartedAt:  started.UTC(),
		Duration:   elapsed,
	}
	if invokeErr != nil {
		inv.ResultType = domain.TypeNil
		inv.Result = ""
		inv.Error = invokeErr.Error()
	}

	if err := s.history.Save(ctx, inv); err != nil {
		logger.Warn("recording invocation of %s: %v", name, err)
	}
}

// List returns every registered command, sorted by name.
func (s *CommandService) List() []domain.CommandInfo {
	return s.registry.List()
}

// Describe returns a single command.
func (s *CommandService) Describe(name string) (*domain.CommandInfo, error) {
	return s.registry.Describe(name)
}
