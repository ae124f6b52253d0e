package tui

import (
	"context"

	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/ports/driving"
)

// MockCommandService is a mock implementation of driving.CommandService.
type MockCommandService struct {
	Commands []domain.CommandInfo
	Value    domain.Value
	Err      error

	Name string
	Args []string
}

var _ driving.CommandService = (*MockCommandService)(nil)

func (m *MockCommandService) Invoke(_ context.Context, name string, texts []string) (domain.Value, error) {
	m.Name = name
	m.Args = texts
	return m.Value, m.Err
}

func (m *MockCommandService) InvokeArgs(_ context.Context, name string, _ domain.Args) (domain.Value, error) {
	m.Name = name
	return m.Value, m.Err
}

func (m *MockCommandService) List() []domain.CommandInfo {
	return m.Commands
}

func (m *MockCommandService) Describe(name string) (*domain.CommandInfo, error) {
	for i := range m.Commands {
		if m.Commands[i].Name == name {
			return &m.Commands[i], nil
		}
	}
	return nil, &domain.CommandNotFoundError{Name: name}
}

// MockHistoryService is a mock implementation of driving.HistoryService.
type MockHistoryService struct {
	Invocations []domain.Invocation
	Err         error
}

var _ driving.HistoryService = (*MockHistoryService)(nil)

func (m *MockHistoryService) Recent(_ context.Context, limit int) ([]domain.Invocation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if limit < len(m.Invocations) {
		return m.Invocations[:limit], nil
	}
	return m.Invocations, nil
}

func (m *MockHistoryService) Get(_ context.Context, id string) (*domain.Invocation, error) {
	for i := range m.Invocations {
		if m.Invocations[i].ID == id {
			return &m.Invocations[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockHistoryService) Clear(_ context.Context) error {
	m.Invocations = nil
	return m.Err
}
