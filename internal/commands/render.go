// internal/commands/render.go
package evalgrid

import (
	"github.com/k0kubun/pp"
	"github.com/mwiater/evalgrid/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var renderDump bool

// renderCmd aggregates the evaluation results and writes the HTML table plus
// any optional analysis or Markdown artifacts.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the pass/fail matrix to HTML",
	Long: `Load a promptfoo result.json, aggregate passes per model and test case,
and write a self-contained HTML table with win percentages per test case and
success rates per model. Optionally also write the aggregated report as JSON
or YAML and a Markdown summary.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		rep, err := report.Generate(cmd.Context(), report.Options{
			LoadOptions:    loadOptions(),
			Title:          cfg.Title,
			HTMLPath:       cfg.HTMLOutputPath(),
			AnalysisPath:   cfg.AnalysisOutput,
			AnalysisFormat: cfg.AnalysisFormat,
			MarkdownPath:   cfg.MarkdownOutput,
		}, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if renderDump {
			_, _ = pp.Fprintln(cmd.OutOrStdout(), rep)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().String("html-output", "", "destination HTML report path (default \"reports/index.html\")")
	renderCmd.Flags().String("analysis-output", "", "optional path to write the aggregated report")
	renderCmd.Flags().String("analysis-format", "", "analysis format: json or yaml (default json)")
	renderCmd.Flags().String("markdown-output", "", "optional path to write a Markdown summary")
	renderCmd.Flags().BoolVar(&renderDump, "dump", false, "pretty-print the aggregated report after rendering")

	_ = viper.BindPFlag("htmlOutput", renderCmd.Flags().Lookup("html-output"))
	_ = viper.BindPFlag("analysisOutput", renderCmd.Flags().Lookup("analysis-output"))
	_ = viper.BindPFlag("analysisFormat", renderCmd.Flags().Lookup("analysis-format"))
	_ = viper.BindPFlag("markdownOutput", renderCmd.Flags().Lookup("markdown-output"))

	rootCmd.AddCommand(renderCmd)
}

// loadOptions maps the merged configuration onto report.LoadOptions.
func loadOptions() report.LoadOptions {
	cfg := GetConfig()
	return report.LoadOptions{
		Input:   cfg.InputLocation(),
		Timeout: cfg.FetchTimeout(),
		Strict:  cfg.Strict,
	}
}
