// internal/commands/show.go
package evalgrid

import "github.com/spf13/cobra"

// showCmd groups commands that display the current state of the tool.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configuration details",
}

func init() {
	rootCmd.AddCommand(showCmd)
}
