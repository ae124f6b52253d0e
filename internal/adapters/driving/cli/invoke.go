package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

var invokeJSON bool

var invokeCmd = &cobra.Command{
	Use:   "invoke [flags] <command> [args...]",
	Short: "Invoke a registered command",
	Long: `Invokes a registered command with positional arguments.

Flags must come before the command name; everything after it is passed to
the command unchanged, so negative numbers need no escaping.

Examples:
  dsctl invoke shell_echo hello
  dsctl invoke --json debug_sum -1 2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInvoke,
}

func init() {
	invokeCmd.Flags().BoolVar(&invokeJSON, "json", false, "output the result as JSON")
	invokeCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(invokeCmd)
}

// invokeOutput is the JSON form of an invocation result.
type invokeOutput struct {
	Command string       `json:"command"`
	Type    string       `json:"type"`
	Value   domain.Value `json:"value"`
	Display string       `json:"display"`
}

func runInvoke(cmd *cobra.Command, args []string) error {
	if commandService == nil {
		return errNotConfigured
	}

	name := args[0]
	result, err := commandService.Invoke(cmd.Context(), name, args[1:])
	if err != nil {
		return fmt.Errorf("invoke %s: %w", name, err)
	}

	if invokeJSON {
		data, err := json.MarshalIndent(invokeOutput{
			Command: name,
			Type:    result.Type().String(),
			Value:   result,
			Display: result.String(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(result.String())
	return nil
}
