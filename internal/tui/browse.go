// Package tui provides an interactive terminal view of the evaluation matrix.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/evalgrid/internal/report"
	"github.com/mwiater/evalgrid/internal/results"
	"github.com/mwiater/evalgrid/internal/util"
)

const (
	testCaseColumnWidth = 36
	winColumnWidth      = 8
	modelColumnWidth    = 12
	chromeHeight        = 4
	defaultDetailWidth  = 80
)

// Model is the Bubble Tea model for browsing a report.
type Model struct {
	title      string
	rep        *results.Report
	matrix     report.Matrix
	table      table.Model
	showDetail bool
	width      int
	height     int
}

// New builds the browser for an aggregated report.
func New(rep *results.Report, title string) Model {
	matrix := report.NewMatrix(rep)

	columns := []table.Column{
		{Title: "Test case", Width: testCaseColumnWidth},
		{Title: "Win %", Width: winColumnWidth},
	}
	for _, col := range matrix.Columns {
		columns = append(columns, table.Column{Title: util.TruncateRunes(col.Label, modelColumnWidth-1), Width: modelColumnWidth})
	}

	rows := make([]table.Row, 0, len(matrix.Rows))
	for _, r := range matrix.Rows {
		row := table.Row{r.TestCase, r.Win.Text}
		for _, c := range r.Cells {
			row = append(row, c.Text)
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 20)),
	)

	if strings.TrimSpace(title) == "" {
		title = report.DefaultTitle
	}
	return Model{title: title, rep: rep, matrix: matrix, table: t}
}

// Run starts the interactive browser and blocks until the user quits.
func Run(rep *results.Report, title string) error {
	_, err := tea.NewProgram(New(rep, title), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter", " ":
			m.showDetail = !m.showDetail
			return m, nil
		case "esc":
			m.showDetail = false
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height/2, 3))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d models, %d test cases, %d records", len(m.rep.Models), len(m.rep.TestCases), m.rep.Records)))
	b.WriteString("\n\n")

	if len(m.matrix.Rows) == 0 {
		b.WriteString(mutedStyle.Render("No test cases found in the evaluation results."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
		b.WriteString(m.footerView())
		b.WriteString("\n")
	}

	if m.showDetail {
		if detail := m.detailView(); detail != "" {
			b.WriteString(detail)
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("↑/↓ move • enter details • esc close • q quit"))
	return b.String()
}

// Selected returns the row under the cursor.
func (m Model) Selected() (report.Row, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.matrix.Rows) {
		return report.Row{}, false
	}
	return m.matrix.Rows[i], true
}

func (m Model) footerView() string {
	parts := make([]string, 0, len(m.matrix.Footer))
	for i, cell := range m.matrix.Footer {
		label := util.TruncateRunes(m.matrix.Columns[i].Label, modelColumnWidth*2)
		parts = append(parts, fmt.Sprintf("%s %s", label, renderTierBadge(cell.Text, cell.Tier)))
	}
	return labelStyle.Render("Success rate: ") + strings.Join(parts, "  ")
}

func (m Model) detailView() string {
	row, ok := m.Selected()
	if !ok {
		return ""
	}
	width := defaultDetailWidth
	if m.width > chromeHeight {
		width = m.width - chromeHeight
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(row.TestCase))
	b.WriteString(" ")
	b.WriteString(renderTierBadge(row.Win.Text, row.Win.Tier))
	b.WriteString("\n")
	if row.Description != "" {
		b.WriteString(util.WrapToWidth(row.Description, width))
		b.WriteString("\n")
	}

	for i, cell := range row.Cells {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(m.matrix.Columns[i].Label))
		b.WriteString(": ")
		if cell.Empty {
			b.WriteString(mutedStyle.Render("no runs"))
			continue
		}
		b.WriteString(renderTierBadge(fmt.Sprintf("%s (%s)", cell.Text, report.FormatPercent(cell.Percent)), cell.Tier))
		for j, reason := range cell.Reasons {
			b.WriteString("\n")
			b.WriteString(util.WrapToWidth(fmt.Sprintf("  Test %d: %s", j+1, util.SingleLine(reason)), width))
		}
	}
	return detailStyle.Render(b.String())
}
