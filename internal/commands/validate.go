// internal/commands/validate.go
package evalgrid

import (
	"errors"
	"fmt"

	"github.com/mwiater/evalgrid/internal/results"
	"github.com/mwiater/evalgrid/internal/schema"
	"github.com/spf13/cobra"
)

// validateCmd checks the results document against the schema without rendering.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a result.json against the expected schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		opts := loadOptions()
		src := results.NewSource(opts.Input)

		data, err := results.Fetch(cmd.Context(), src, opts.Timeout)
		if err != nil {
			return err
		}

		if err := schema.ValidateDocument(data); err != nil {
			var verr *schema.ValidationError
			if errors.As(err, &verr) {
				fmt.Fprintf(out, "%s is invalid:\n", src.Location())
				for _, problem := range verr.Problems {
					fmt.Fprintf(out, "  - %s\n", problem)
				}
			}
			return err
		}

		doc, err := results.Decode(data)
		if err != nil {
			return &results.LoadFailure{Location: src.Location(), Err: err}
		}
		rep, err := results.Aggregate(doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s is valid: %d records, %d models, %d test cases, %d without a test case\n",
			src.Location(), rep.Records, len(rep.Models), len(rep.TestCases), rep.Skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
