package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/dsctl/internal/adapters/driving/tui"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive console",
	Long: `Start an interactive console for invoking commands.

Type a command name followed by its arguments and press enter. Results stay
in the transcript together with their type and duration. Press tab to browse
registered commands and ctrl+r to reuse a recorded invocation.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, _ []string) error {
	if commandService == nil {
		return errNotConfigured
	}

	app, err := tui.NewApp(&tui.Ports{
		Commands: commandService,
		History:  historyService,
	})
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("console error: %w", err)
	}
	return nil
}
