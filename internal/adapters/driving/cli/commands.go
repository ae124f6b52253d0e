package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

var commandsModule string

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List registered commands",
	Long: `Lists every registered command with its module and argument layout.

Each argument shows its position in the argument list and the type it is
converted to. Positions taken by session parameters are skipped.`,
	Args: cobra.NoArgs,
	RunE: runCommands,
}

func init() {
	commandsCmd.Flags().StringVarP(&commandsModule, "module", "m", "", "only list commands of this module")
	rootCmd.AddCommand(commandsCmd)
}

func runCommands(cmd *cobra.Command, _ []string) error {
	if commandService == nil {
		return errNotConfigured
	}

	var infos []domain.CommandInfo
	for _, info := range commandService.List() {
		if commandsModule == "" || info.Module == commandsModule {
			infos = append(infos, info)
		}
	}

	if len(infos) == 0 {
		cmd.Println("No commands registered.")
		return nil
	}

	st := stylesFor(cmd.OutOrStdout())
	cmd.Println(st.Title.Render("Commands:"))
	cmd.Println()
	for _, info := range infos {
		parts := []string{st.Name.Render(info.Name)}
		if len(info.Params) > 0 {
			parts = append(parts, formatParams(info.Params))
		}
		if info.Module != "" {
			parts = append(parts, st.Muted.Render("("+info.Module+")"))
		}
		cmd.Println("  " + strings.Join(parts, " "))
		if info.Description != "" {
			cmd.Printf("      %s\n", info.Description)
		}
	}
	return nil
}

// formatParams renders a parameter layout like "[0]int64 [1]string".
func formatParams(params []domain.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("[%d]%s", p.Index, p.Type)
	}
	return strings.Join(parts, " ")
}
