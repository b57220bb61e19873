// internal/commands/browse.go
package evalgrid

import (
	"github.com/mwiater/evalgrid/internal/report"
	"github.com/mwiater/evalgrid/internal/tui"
	"github.com/spf13/cobra"
)

// browseCmd opens the interactive matrix browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the matrix interactively",
	Long:  `Open a terminal UI listing every test case with its win percentage and per-model pass counts. Press enter on a row to see its description and failure reasons.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := report.Load(cmd.Context(), loadOptions())
		if err != nil {
			return err
		}
		return tui.Run(rep, GetConfig().Title)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
