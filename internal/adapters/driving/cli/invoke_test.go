package cli

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

func TestInvokeCmd_Use(t *testing.T) {
	assert.Equal(t, "invoke [flags] <command> [args...]", invokeCmd.Use)
}

func TestInvokeCmd_RequiresCommandName(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "invoke")

	assert.Error(t, err)
}

func TestInvokeCmd_Echo(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "invoke", "shell_echo", "hello")

	require.NoError(t, err)
	assert.Equal(t, "hello", strings.TrimSpace(out))
}

func TestInvokeCmd_NegativeArgumentsAreNotFlags(t *testing.T) {
	setupServices(t)

	out, err := execute(t, "invoke", "debug_sum", "-1", "-2")

	require.NoError(t, err)
	assert.Equal(t, "-3", strings.TrimSpace(out))
}

func TestInvokeCmd_JSON(t *testing.T) {
	setupServices(t)
	defer func() { invokeJSON = false }()

	out, err := execute(t, "invoke", "--json", "debug_sum", "40", "2")

	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "debug_sum", got["command"])
	assert.Equal(t, "Integer", got["type"])
	assert.Equal(t, float64(42), got["value"])
	assert.Equal(t, "42", got["display"])
}

func TestInvokeCmd_UnknownCommand(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "invoke", "nope")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandNotFound)
}

func TestInvokeCmd_TypeError(t *testing.T) {
	setupServices(t)

	_, err := execute(t, "invoke", "debug_sum", "1", "x")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidType)
	assert.Contains(t, err.Error(), "invoke debug_sum")
}

func TestInvokeCmd_RecordsHistory(t *testing.T) {
	stack := setupServices(t)

	_, err := execute(t, "invoke", "shell_echo", "recorded")
	require.NoError(t, err)

	recent, err := stack.history.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "shell_echo", recent[0].Command)
	assert.Equal(t, []string{"recorded"}, recent[0].Args)
}

func TestInvokeCmd_NotConfigured(t *testing.T) {
	SetServices(&Services{})

	_, err := execute(t, "invoke", "shell_echo", "x")

	assert.ErrorIs(t, err, errNotConfigured)
}
