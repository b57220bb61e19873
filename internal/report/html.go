// internal/report/html.go
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/mwiater/evalgrid/internal/results"
)

// DefaultTitle is used when no report title is configured.
const DefaultTitle = "Evaluation Results"

// HTMLOptions controls the standalone HTML page.
type HTMLOptions struct {
	Title       string
	GeneratedAt time.Time
}

type htmlReportData struct {
	Title       string
	GeneratedAt string
	Records     int
	Skipped     int
	Columns     []results.Model
	Rows        []htmlRow
	Footer      []htmlCell
}

type htmlRow struct {
	TestCase    string
	Description string
	Win         htmlCell
	Cells       []htmlCell
}

type htmlCell struct {
	Text    string
	Class   string
	Tooltip string
}

type htmlFailureData struct {
	Title   string
	Message string
}

// RenderHTML writes the color-coded evaluation matrix as a self-contained page.
func RenderHTML(w io.Writer, rep *results.Report, opts HTMLOptions) error {
	matrix := NewMatrix(rep)
	data := htmlReportData{
		Title:   titleOrDefault(opts.Title),
		Records: rep.Records,
		Skipped: rep.Skipped,
		Columns: matrix.Columns,
		Rows:    make([]htmlRow, 0, len(matrix.Rows)),
		Footer:  make([]htmlCell, 0, len(matrix.Footer)),
	}
	if !opts.GeneratedAt.IsZero() {
		data.GeneratedAt = opts.GeneratedAt.UTC().Format(time.RFC3339)
	}

	for _, row := range matrix.Rows {
		hr := htmlRow{
			TestCase:    row.TestCase,
			Description: row.Description,
			Win:         htmlCell{Text: row.Win.Text, Class: row.Win.Tier.TableClass()},
			Cells:       make([]htmlCell, 0, len(row.Cells)),
		}
		for _, cell := range row.Cells {
			if cell.Empty {
				hr.Cells = append(hr.Cells, htmlCell{Text: cell.Text, Class: "text-muted"})
				continue
			}
			hr.Cells = append(hr.Cells, htmlCell{
				Text:    cell.Text,
				Class:   cell.Tier.TableClass(),
				Tooltip: reasonsTooltip(cell.Reasons),
			})
		}
		data.Rows = append(data.Rows, hr)
	}
	for _, cell := range matrix.Footer {
		data.Footer = append(data.Footer, htmlCell{Text: cell.Text, Class: cell.Tier.TableClass()})
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderFailure writes the static notice shown when results could not be loaded.
func RenderFailure(w io.Writer, title string, cause error) error {
	data := htmlFailureData{Title: titleOrDefault(title)}
	if cause != nil {
		data.Message = cause.Error()
	}
	return failureTemplate.Execute(w, data)
}

// reasonsTooltip numbers each reason and joins them with <br>. Reasons are
// escaped here because the tooltip renders its title as HTML.
func reasonsTooltip(reasons []string) string {
	if len(reasons) == 0 {
		return ""
	}
	parts := make([]string, 0, len(reasons))
	for i, reason := range reasons {
		parts = append(parts, fmt.Sprintf("Test %d: %s", i+1, template.HTMLEscapeString(reason)))
	}
	return strings.Join(parts, "<br>")
}

func titleOrDefault(title string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	return DefaultTitle
}

var (
	reportTemplate  = template.Must(template.New("report").Parse(pageHeadHTML + reportBodyHTML))
	failureTemplate = template.Must(template.New("failure").Parse(pageHeadHTML + failureBodyHTML))
)

const pageHeadHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css">
  <style>
    body { background-color: #F1F5F9; }
    .matrix-table { table-layout: fixed; }
    .matrix-table th.model-col { width: 96px; }
    .matrix-table td.test-case { word-break: break-word; }
    .tooltip-inner { max-width: 480px; text-align: left; }
  </style>
</head>
`

const reportBodyHTML = `<body>
  <nav class="navbar navbar-dark bg-dark mb-3">
    <div class="container-fluid">
      <span class="navbar-brand mb-0 h1">{{ .Title }}</span>
      <span class="text-light small">{{ .Records }} records{{ if .Skipped }}, {{ .Skipped }} without a test case{{ end }}{{ if .GeneratedAt }} &middot; {{ .GeneratedAt }}{{ end }}</span>
    </div>
  </nav>
  <div class="container-fluid" id="tableContainer">
    <div class="table-responsive">
      <table class="table table-sm matrix-table border border-dark">
        <thead>
          <tr id="headerRow">
            <th class="align-middle border border-dark small py-2">Test Case</th>
            <th class="text-center align-middle border border-dark small py-2">Win %</th>
            {{- range .Columns }}
            <th class="text-center align-middle border border-dark small py-2 model-col" title="{{ .ID }}">{{ .Label }}</th>
            {{- end }}
          </tr>
        </thead>
        <tbody id="tableBody">
          {{- range .Rows }}
          <tr class="border border-dark">
            <td class="small fw-medium border border-dark py-2 test-case"{{ if .Description }} data-bs-toggle="tooltip" data-bs-placement="right" title="{{ .Description }}"{{ end }}>{{ .TestCase }}</td>
            <td class="text-center border border-dark small py-2 {{ .Win.Class }}">{{ .Win.Text }}</td>
            {{- range .Cells }}
            <td class="text-center border border-dark small py-2 {{ .Class }}"{{ if .Tooltip }} data-bs-toggle="tooltip" data-bs-placement="top" data-bs-html="true" title="{{ .Tooltip }}"{{ end }}>{{ .Text }}</td>
            {{- end }}
          </tr>
          {{- end }}
        </tbody>
        <tfoot>
          <tr id="footerRow">
            <td class="fw-bold border border-dark small py-2">Success Rate</td>
            <td class="border border-dark small py-2"></td>
            {{- range .Footer }}
            <td class="text-center fw-bold border border-dark small py-2 {{ .Class }}">{{ .Text }}</td>
            {{- end }}
          </tr>
        </tfoot>
      </table>
    </div>
  </div>
  <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>
  <script>
    document.addEventListener('DOMContentLoaded', function () {
      new bootstrap.Tooltip(document.body, { selector: '[data-bs-toggle="tooltip"]' });
    });
  </script>
</body>
</html>
`

const failureBodyHTML = `<body>
  <div class="container py-5" id="loadingContainer">
    <div class="alert alert-danger small">Error loading evaluation results.</div>
    {{- if .Message }}
    <pre class="small text-muted">{{ .Message }}</pre>
    {{- end }}
  </div>
</body>
</html>
`
