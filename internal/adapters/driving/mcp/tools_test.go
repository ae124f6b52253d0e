package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

var testCommands = []domain.CommandInfo{
	{
		Name:        "shell_echo",
		Module:      "shell",
		Description: "Return the argument unchanged",
		Params:      []domain.Param{{Index: 0, Type: "string", Variant: domain.TypeString}},
		Arity:       1,
	},
	{
		Name:        "debug_sum",
		Module:      "debug",
		Description: "Add two integers",
		Params: []domain.Param{
			{Index: 0, Type: "int64", Variant: domain.TypeInteger},
			{Index: 1, Type: "int64", Variant: domain.TypeInteger},
		},
		Arity: 2,
	},
}

func TestServer_handleListCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("lists all commands", func(t *testing.T) {
		server, err := NewServer(&Ports{Commands: &mockCommandService{commands: testCommands}})
		require.NoError(t, err)

		_, output, err := server.handleListCommands(ctx, nil, ListCommandsInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "shell_echo", output.Commands[0].Name)
		assert.Equal(t, "shell", output.Commands[0].Module)
		assert.Equal(t, []ParamOutput{{Index: 0, Type: "int64"}, {Index: 1, Type: "int64"}}, output.Commands[1].Params)
		assert.Equal(t, 2, output.Commands[1].Arity)
	})

	t.Run("filters by module", func(t *testing.T) {
		server, err := NewServer(&Ports{Commands: &mockCommandService{commands: testCommands}})
		require.NoError(t, err)

		_, output, err := server.handleListCommands(ctx, nil, ListCommandsInput{Module: "debug"})

		require.NoError(t, err)
		require.Equal(t, 1, output.Count)
		assert.Equal(t, "debug_sum", output.Commands[0].Name)
	})

	t.Run("empty registry returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Commands: &mockCommandService{}})
		require.NoError(t, err)

		_, output, err := server.handleListCommands(ctx, nil, ListCommandsInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Commands)
	})
}

func TestServer_invokeHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("returns typed result", func(t *testing.T) {
		mock := &mockCommandService{commands: testCommands, result: domain.StringValue("hello")}
		server, err := NewServer(&Ports{Commands: mock})
		require.NoError(t, err)

		_, output, err := server.invokeHandler("shell_echo")(ctx, nil, InvokeInput{Args: []string{"hello"}})

		require.NoError(t, err)
		assert.Equal(t, "shell_echo", mock.invokedName)
		assert.Equal(t, []string{"hello"}, mock.invokedArgs)
		assert.Equal(t, "String", output.Type)
		assert.Equal(t, "hello", output.Display)

		data, err := json.Marshal(output)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"String","value":"hello","display":"hello"}`, string(data))
	})

	t.Run("nil result encodes as null", func(t *testing.T) {
		mock := &mockCommandService{result: domain.Nil}
		server, err := NewServer(&Ports{Commands: mock})
		require.NoError(t, err)

		_, output, err := server.invokeHandler("shell_env")(ctx, nil, InvokeInput{})

		require.NoError(t, err)
		data, err := json.Marshal(output)
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"Nil","value":null,"display":"Nil"}`, string(data))
	})

	t.Run("returns error on invocation failure", func(t *testing.T) {
		mock := &mockCommandService{err: errors.New("command failed")}
		server, err := NewServer(&Ports{Commands: mock})
		require.NoError(t, err)

		_, _, err = server.invokeHandler("debug_sum")(ctx, nil, InvokeInput{Args: []string{"1"}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "command failed")
	})
}

func TestToolDescription(t *testing.T) {
	tests := []struct {
		name     string
		info     domain.CommandInfo
		expected string
	}{
		{
			name:     "no params",
			info:     domain.CommandInfo{Name: "shell_pwd", Description: "Print the session working directory"},
			expected: "Print the session working directory",
		},
		{
			name:     "with params",
			info:     testCommands[1],
			expected: "Add two integers. Args: [0] int64, [1] int64",
		},
		{
			name:     "missing description falls back to name",
			info:     domain.CommandInfo{Name: "x", Params: []domain.Param{{Index: 1, Type: "string"}}},
			expected: "x. Args: [1] string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toolDescription(tt.info))
		})
	}
}
