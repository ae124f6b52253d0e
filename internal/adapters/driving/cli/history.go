package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent invocations",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one invocation",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded invocations",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

var errHistoryDisabled = errors.New("history is disabled (set history.enabled = true)")

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of invocations")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errHistoryDisabled
	}

	invocations, err := historyService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("history failed: %w", err)
	}

	if len(invocations) == 0 {
		cmd.Println("No invocations recorded.")
		return nil
	}

	st := stylesFor(cmd.OutOrStdout())
	for i := range invocations {
		cmd.Println(formatInvocation(st, &invocations[i]))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errHistoryDisabled
	}

	inv, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("invocation %s: %w", args[0], err)
	}

	cmd.Printf("ID:       %s\n", inv.ID)
	cmd.Printf("Command:  %s\n", inv.Command)
	cmd.Printf("Args:     %s\n", strings.Join(inv.Args, " "))
	cmd.Printf("Started:  %s\n", inv.StartedAt.Local().Format(time.RFC3339))
	cmd.Printf("Duration: %s\n", inv.Duration)
	if inv.Failed() {
		cmd.Printf("Error:    %s\n", inv.Error)
	} else {
		cmd.Printf("Result:   %s (%s)\n", inv.Result, inv.ResultType)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errHistoryDisabled
	}
	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	cmd.Println("History cleared.")
	return nil
}

// formatInvocation renders one history line:
// "<time> <id> <command> <args> => <result>".
func formatInvocation(st *styles, inv *domain.Invocation) string {
	outcome := st.Success.Render("=> " + inv.Result)
	if inv.Failed() {
		outcome = st.Error.Render("!! " + inv.Error)
	}

	parts := []string{
		st.Muted.Render(inv.StartedAt.Local().Format("2006-01-02 15:04:05")),
		inv.ID,
		st.Name.Render(inv.Command),
	}
	if len(inv.Args) > 0 {
		parts = append(parts, strings.Join(inv.Args, " "))
	}
	parts = append(parts, outcome)
	return strings.Join(parts, " ")
}
