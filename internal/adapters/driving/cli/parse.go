package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/dsctl/internal/core/domain"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>...",
	Short: "Show how arguments are typed",
	Long: `Shows the value each text argument is converted to before invocation.

Examples:
  dsctl parse 10 10.5 true null hello`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	st := stylesFor(cmd.OutOrStdout())
	for _, text := range args {
		v := domain.Parse(text)
		cmd.Printf("%q => %s %s\n", text, st.Name.Render(v.Type().String()), v.String())
	}
	return nil
}
