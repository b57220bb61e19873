// internal/tui/browse_test.go
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/evalgrid/internal/results"
)

func testReport(t *testing.T) *results.Report {
	t.Helper()
	pass, fail := true, false
	rec := func(model, key string, ok *bool, reason, desc string) results.RawResult {
		r := results.RawResult{
			Provider: &results.Provider{ID: model},
			GradingResult: &results.GradingResult{ComponentResults: []results.ComponentResult{
				{Pass: ok, Reason: reason, Assertion: &results.Assertion{Value: "file://" + key + ".py:check"}},
			}},
		}
		if desc != "" {
			r.TestCase = &results.TestCaseInfo{Description: desc}
		}
		return r
	}
	rep, err := results.Aggregate(results.Document{Results: &results.ResultSet{Results: []results.RawResult{
		rec("alpha", "cases/easy", &pass, "", "An easy one"),
		rec("beta", "cases/easy", &pass, "", ""),
		rec("alpha", "cases/hard", &fail, "Code execution failed", "A hard one"),
	}}})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	return rep
}

// TestBrowseNavigationAndDetail drives the browser through cursor moves and
// the detail toggle, checking the rendered view at each step.
func TestBrowseNavigationAndDetail(t *testing.T) {
	m := New(testReport(t), "")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	out := m.View()
	for _, want := range []string{"Evaluation Results", "cases/easy", "cases/hard", "Success rate"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected view to contain %q; got:\n%s", want, out)
		}
	}

	row, ok := m.Selected()
	if !ok || row.TestCase != "cases/easy" {
		t.Fatalf("expected first row selected, got %+v", row)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	row, _ = m.Selected()
	if row.TestCase != "cases/hard" {
		t.Fatalf("expected cursor on cases/hard, got %q", row.TestCase)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if !m.showDetail {
		t.Fatal("expected detail pane after enter")
	}
	out = m.View()
	for _, want := range []string{"A hard one", "Test 1: Code execution failed", "no runs"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected detail to contain %q; got:\n%s", want, out)
		}
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.showDetail {
		t.Fatal("expected esc to close detail pane")
	}
}

func TestBrowseQuit(t *testing.T) {
	m := New(testReport(t), "Title")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestBrowseEmptyReport(t *testing.T) {
	rep, err := results.Aggregate(results.Document{})
	if err != nil {
		t.Fatal(err)
	}
	m := New(rep, "Empty")
	if !strings.Contains(m.View(), "No test cases found") {
		t.Fatalf("expected empty notice, got %s", m.View())
	}
	if _, ok := m.Selected(); ok {
		t.Fatal("expected no selection on empty report")
	}
}
