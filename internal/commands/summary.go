// internal/commands/summary.go
package evalgrid

import (
	"github.com/mwiater/evalgrid/internal/report"
	"github.com/spf13/cobra"
)

var summaryNoColor bool

// summaryCmd prints the matrix as a terminal table.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the pass/fail matrix in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := report.Load(cmd.Context(), loadOptions())
		if err != nil {
			return err
		}
		return report.RenderTerminal(cmd.OutOrStdout(), rep, report.TerminalOptions{Color: !summaryNoColor})
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryNoColor, "no-color", false, "disable tier colors")
	rootCmd.AddCommand(summaryCmd)
}
