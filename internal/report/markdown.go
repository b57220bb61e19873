// internal/report/markdown.go
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mwiater/evalgrid/internal/results"
)

// RenderMarkdown writes the matrix as a GitHub-flavored Markdown table,
// followed by the test case descriptions.
func RenderMarkdown(w io.Writer, rep *results.Report, title string) error {
	matrix := NewMatrix(rep)
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# %s\n\n", escapeMarkdown(titleOrDefault(title)))
	fmt.Fprintf(bw, "%d records, %d models, %d test cases", rep.Records, len(rep.Models), len(rep.TestCases))
	if rep.Skipped > 0 {
		fmt.Fprintf(bw, ", %d records without a test case", rep.Skipped)
	}
	bw.WriteString("\n\n")

	header := []string{"Test case", "Win %"}
	for _, col := range matrix.Columns {
		header = append(header, escapeMarkdown(col.Label))
	}
	writeMarkdownRow(bw, header)
	align := []string{":--", "--:"}
	for range matrix.Columns {
		align = append(align, ":-:")
	}
	writeMarkdownRow(bw, align)

	for _, row := range matrix.Rows {
		cells := []string{markdownCode(row.TestCase), row.Win.Text}
		for _, cell := range row.Cells {
			cells = append(cells, cell.Text)
		}
		writeMarkdownRow(bw, cells)
	}

	footer := []string{"**Success rate**", ""}
	for _, cell := range matrix.Footer {
		footer = append(footer, "**"+cell.Text+"**")
	}
	writeMarkdownRow(bw, footer)

	var described []Row
	for _, row := range matrix.Rows {
		if row.Description != "" {
			described = append(described, row)
		}
	}
	if len(described) > 0 {
		bw.WriteString("\n## Test cases\n\n")
		for _, row := range described {
			fmt.Fprintf(bw, "- %s: %s\n", markdownCode(row.TestCase), escapeMarkdown(row.Description))
		}
	}

	return bw.Flush()
}

func writeMarkdownRow(w *bufio.Writer, cells []string) {
	w.WriteString("| ")
	w.WriteString(strings.Join(cells, " | "))
	w.WriteString(" |\n")
}

// markdownCode wraps a test case name in a code span that is safe inside a
// table cell.
func markdownCode(s string) string {
	return "`" + escapeMarkdown(strings.ReplaceAll(s, "`", "'")) + "`"
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
