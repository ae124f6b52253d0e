package commands

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/dsctl/internal/core/domain"
)

type mockCommandService struct {
	commands []domain.CommandInfo
}

func (m *mockCommandService) Invoke(context.Context, string, []string) (domain.Value, error) {
	return domain.Nil, nil
}

func (m *mockCommandService) InvokeArgs(context.Context, string, domain.Args) (domain.Value, error) {
	return domain.Nil, nil
}

func (m *mockCommandService) List() []domain.CommandInfo {
	return m.commands
}

func (m *mockCommandService) Describe(name string) (*domain.CommandInfo, error) {
	return nil, &domain.CommandNotFoundError{Name: name}
}

func testCommands() []domain.CommandInfo {
	return []domain.CommandInfo{
		{Name: "debug_ping", Module: "debug", Description: "Reply with pong"},
		{
			Name:        "shell_echo",
			Module:      "shell",
			Description: "Echo the argument",
			Params:      []domain.Param{{Index: 0, Type: "string"}},
			Arity:       1,
		},
	}
}

func newLoadedView(t *testing.T) *View {
	t.Helper()
	v := NewView(nil, nil, &mockCommandService{commands: testCommands()})
	v.SetDimensions(100, 30)
	v.Update(v.Init()())
	return v
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, nil)

	assert.Equal(t, "Initialising...", v.View())
	assert.Nil(t, v.SelectedCommand())
}

func TestView_Init(t *testing.T) {
	v := NewView(nil, nil, &mockCommandService{commands: testCommands()})

	msg, ok := v.Init()().(messages.CommandsLoaded)

	require.True(t, ok)
	assert.Len(t, msg.Commands, 2)
}

func TestView_InitWithoutService(t *testing.T) {
	v := NewView(nil, nil, nil)

	msg, ok := v.Init()().(messages.CommandsLoaded)

	require.True(t, ok)
	assert.Empty(t, msg.Commands)
}

func TestView_Render(t *testing.T) {
	v := newLoadedView(t)

	view := v.View()

	assert.Contains(t, view, "Commands (2)")
	assert.Contains(t, view, "debug_ping")
	assert.Contains(t, view, "(shell)")
	assert.Contains(t, view, "Reply with pong")
	assert.Contains(t, view, "(no arguments)")
}

func TestView_RenderEmpty(t *testing.T) {
	v := NewView(nil, nil, &mockCommandService{})
	v.SetDimensions(100, 30)
	v.Update(v.Init()())

	assert.Contains(t, v.View(), "No commands registered.")
}

func TestView_Navigation(t *testing.T) {
	v := newLoadedView(t)

	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.Selected())

	// Stops at the last entry.
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, v.Selected())
	assert.Contains(t, v.View(), "[0]string")

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, v.Selected())

	// Stops at the first entry.
	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.Selected())
}

func TestView_SelectWithoutArguments(t *testing.T) {
	v := newLoadedView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.LineChosen{Line: "debug_ping"}, cmd())
}

func TestView_SelectWithArguments(t *testing.T) {
	v := newLoadedView(t)
	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.LineChosen{Line: "shell_echo "}, cmd())
}

func TestView_SelectEmpty(t *testing.T) {
	v := NewView(nil, nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Back(t *testing.T) {
	v := newLoadedView(t)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewConsole}, cmd())
}

func TestView_ReloadResetsSelection(t *testing.T) {
	v := newLoadedView(t)
	v.Update(tea.KeyMsg{Type: tea.KeyDown})

	v.Update(messages.CommandsLoaded{Commands: testCommands()})

	assert.Equal(t, 0, v.Selected())
}

func TestFormatParams(t *testing.T) {
	assert.Equal(t, "(no arguments)", formatParams(nil))
	assert.Equal(t, "[0]int64 [2]string", formatParams([]domain.Param{
		{Index: 0, Type: "int64"},
		{Index: 2, Type: "string"},
	}))
}
