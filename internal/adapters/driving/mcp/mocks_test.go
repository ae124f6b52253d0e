package mcp

import (
	"context"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

// mockCommandService is a mock implementation of driving.CommandService.
type mockCommandService struct {
	commands []domain.CommandInfo
	result   domain.Value
	err      error

	invokedName string
	invokedArgs []string
}

func (m *mockCommandService) Invoke(_ context.Context, name string, texts []string) (domain.Value, error) {
	m.invokedName = name
	m.invokedArgs = texts
	return m.result, m.err
}

func (m *mockCommandService) InvokeArgs(_ context.Context, name string, _ domain.Args) (domain.Value, error) {
	m.invokedName = name
	return m.result, m.err
}

func (m *mockCommandService) List() []domain.CommandInfo {
	return m.commands
}

func (m *mockCommandService) Describe(name string) (*domain.CommandInfo, error) {
	for i := range m.commands {
		if m.commands[i].Name == name {
			return &m.commands[i], nil
		}
	}
	return nil, &domain.CommandNotFoundError{Name: name}
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	invocations []domain.Invocation
	invocation  *domain.Invocation
	err         error
}

func (m *mockHistoryService) Recent(_ context.Context, _ int) ([]domain.Invocation, error) {
	return m.invocations, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.Invocation, error) {
	return m.invocation, m.err
}

func (m *mockHistoryService) Clear(_ context.Context) error {
	return m.err
}
