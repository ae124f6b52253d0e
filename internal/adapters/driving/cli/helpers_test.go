package cli

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/dsctl/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/dsctl/internal/core/domain"
	"github.com/custodia-labs/dsctl/internal/core/services"
	"github.com/custodia-labs/dsctl/internal/datasource/debug"
)

// testStack wires real services over in-memory stores.
type testStack struct {
	history  *memory.HistoryStore
	config   *memory.ConfigStore
	settings *services.SettingsService
}

func setupServices(t *testing.T) *testStack {
	t.Helper()

	registry := services.NewCommandRegistry()
	sess := &domain.Session{
		ID:      "cli-test",
		WorkDir: t.TempDir(),
		Env:     map[string]string{"PATH": os.Getenv("PATH"), "HOME": "/home/test"},
		Shell:   domain.ShellSettings{Path: "/bin/sh", Timeout: 5 * time.Second},
	}
	require.NoError(t, debug.Register(registry, sess))

	stack := &testStack{
		history: memory.NewHistoryStore(),
		config:  memory.NewConfigStore(),
	}
	stack.settings = services.NewSettingsService(stack.config)

	SetServices(&Services{
		Commands: services.NewCommandService(registry, stack.history, nil),
		History:  services.NewHistoryService(stack.history),
		Settings: stack.settings,
	})
	t.Cleanup(func() { SetServices(&Services{}) })
	return stack
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
