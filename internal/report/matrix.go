// internal/report/matrix.go
package report

import (
	"fmt"

	"github.com/mwiater/evalgrid/internal/results"
)

// Cell is one rendered value of the matrix together with its tier.
type Cell struct {
	Text    string
	Percent float64
	Tier    results.Tier
	Empty   bool
	Reasons []string
}

// Row is one test case: its overall win percentage and a cell per sorted model.
type Row struct {
	TestCase    string
	Description string
	Win         Cell
	Cells       []Cell
}

// Matrix is the report laid out in display order, shared by every renderer.
type Matrix struct {
	Columns []results.Model
	Rows    []Row
	Footer  []Cell
}

// NewMatrix orders the report by performance: rows follow SortedTestCases,
// columns follow SortedModels.
func NewMatrix(rep *results.Report) Matrix {
	m := Matrix{
		Columns: append([]results.Model(nil), rep.SortedModels...),
		Rows:    make([]Row, 0, len(rep.SortedTestCases)),
		Footer:  make([]Cell, 0, len(rep.SortedModels)),
	}

	for _, name := range rep.SortedTestCases {
		win := rep.TestCaseTotals[name].WinPercentage
		row := Row{
			TestCase:    name,
			Description: rep.Description(name),
			Win:         percentCell(win),
			Cells:       make([]Cell, 0, len(rep.SortedModels)),
		}
		for _, model := range rep.SortedModels {
			stats, ok := rep.Cell(name, model.ID)
			if !ok {
				row.Cells = append(row.Cells, Cell{Text: "0/0", Empty: true})
				continue
			}
			rate := stats.PassRate()
			row.Cells = append(row.Cells, Cell{
				Text:    fmt.Sprintf("%d/%d", stats.Passes, stats.Total),
				Percent: rate,
				Tier:    results.PerformanceTier(rate),
				Reasons: stats.Reasons,
			})
		}
		m.Rows = append(m.Rows, row)
	}

	for _, model := range rep.SortedModels {
		m.Footer = append(m.Footer, percentCell(rep.ModelTotals[model.ID].SuccessRate))
	}
	return m
}

func percentCell(p float64) Cell {
	return Cell{Text: FormatPercent(p), Percent: p, Tier: results.PerformanceTier(p)}
}

// FormatPercent renders a percentage with one decimal, e.g. "66.7%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
