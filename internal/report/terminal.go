// internal/report/terminal.go
package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/mwiater/evalgrid/internal/results"
	"github.com/mwiater/evalgrid/internal/util"
)

// TerminalOptions controls the plain-terminal summary table.
type TerminalOptions struct {
	Color         bool
	MaxNameLength int
}

const defaultMaxNameLength = 48

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
)

// TierColor returns the terminal color used for a tier.
func TierColor(t results.Tier) *color.Color {
	switch t {
	case results.TierHigh:
		return color.New(color.FgGreen)
	case results.TierGood:
		return color.New(color.FgCyan)
	case results.TierWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// RenderTerminal writes the matrix as a bordered table with tier-colored cells.
func RenderTerminal(w io.Writer, rep *results.Report, opts TerminalOptions) error {
	matrix := NewMatrix(rep)
	maxName := opts.MaxNameLength
	if maxName <= 0 {
		maxName = defaultMaxNameLength
	}

	paint := func(c Cell) string {
		if c.Empty {
			muted := color.New(color.Faint)
			setColor(muted, opts.Color)
			return muted.Sprint(c.Text)
		}
		tc := TierColor(c.Tier)
		setColor(tc, opts.Color)
		return tc.Sprint(c.Text)
	}

	headers := []string{"Test case", "Win %"}
	for _, col := range matrix.Columns {
		headers = append(headers, util.TruncateRunes(col.Label, 24))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			default:
				return numberStyle
			}
		})

	for _, row := range matrix.Rows {
		cells := []string{util.TruncateRunes(row.TestCase, maxName), paint(row.Win)}
		for _, cell := range row.Cells {
			cells = append(cells, paint(cell))
		}
		t.Row(cells...)
	}

	footer := []string{"Success rate", ""}
	for _, cell := range matrix.Footer {
		footer = append(footer, paint(cell))
	}
	t.Row(footer...)

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d records, %d models, %d test cases, %d skipped\n", rep.Records, len(rep.Models), len(rep.TestCases), rep.Skipped)
	return err
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
		return
	}
	c.DisableColor()
}
