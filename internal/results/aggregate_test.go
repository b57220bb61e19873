package results

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func boolPtr(v bool) *bool { return &v }

func record(model, label, assertion string, pass *bool, reason, description string) RawResult {
	r := RawResult{Provider: &Provider{ID: model, Label: label}}
	if assertion != "" || pass != nil || reason != "" {
		cr := ComponentResult{Pass: pass, Reason: reason}
		if assertion != "" {
			cr.Assertion = &Assertion{Value: assertion}
		}
		r.GradingResult = &GradingResult{ComponentResults: []ComponentResult{cr}}
	}
	if description != "" {
		r.TestCase = &TestCaseInfo{Description: description}
	}
	return r
}

func doc(records ...RawResult) Document {
	return Document{Results: &ResultSet{Results: records}}
}

func TestAggregateEndToEnd(t *testing.T) {
	rep, err := Aggregate(doc(
		record("A", "", "file://t1.py:check", boolPtr(true), "", ""),
		record("A", "", "file://t1.py:check", boolPtr(false), "", ""),
	))
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}

	cell, ok := rep.Cell("t1", "A")
	if !ok {
		t.Fatal("expected cell for (t1, A)")
	}
	want := &CellStats{Passes: 1, Total: 2, Reasons: []string{}}
	if !reflect.DeepEqual(cell, want) {
		t.Fatalf("cell = %+v, want %+v", cell, want)
	}
	if got := rep.TestCaseTotals["t1"]; got != (TestCaseAggregate{Passes: 1, Total: 2, WinPercentage: 50}) {
		t.Fatalf("test case aggregate = %+v", got)
	}
	if got := rep.ModelTotals["A"]; got != (ModelAggregate{Passes: 1, Total: 2, SuccessRate: 50}) {
		t.Fatalf("model aggregate = %+v", got)
	}
	if len(rep.Models) != 1 || rep.Models[0].Label != "A" {
		t.Fatalf("expected label to fall back to id, got %+v", rep.Models)
	}
}

func TestAggregateFirstSeenWins(t *testing.T) {
	rep, err := Aggregate(doc(
		record("m1", "First", "file://t1.py:x", boolPtr(true), "", "first description"),
		record("m1", "Second", "file://t1.py:x", boolPtr(true), "", "second description"),
		record("m2", "", "file://t2.py:x", boolPtr(true), "", ""),
		record("m2", "", "file://t2.py:x", boolPtr(true), "", "late description"),
	))
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if rep.Models[0].Label != "First" {
		t.Fatalf("expected first label retained, got %q", rep.Models[0].Label)
	}
	if got := rep.Description("t1"); got != "first description" {
		t.Fatalf("expected first description, got %q", got)
	}
	if got := rep.Description("t2"); got != "" {
		t.Fatalf("expected no description when first record lacked one, got %q", got)
	}
}

func TestAggregateSkipsRecordsWithoutKey(t *testing.T) {
	rep, err := Aggregate(doc(
		record("m1", "", "", nil, "", ""),
		record("m2", "", "python:inline", boolPtr(true), "ignored", ""),
		record("m1", "", "file://t1.py:x", nil, "", ""),
	))
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if len(rep.Models) != 2 {
		t.Fatalf("expected both models registered, got %+v", rep.Models)
	}
	if rep.Skipped != 2 || rep.Records != 3 {
		t.Fatalf("expected 2 skipped of 3, got %d of %d", rep.Skipped, rep.Records)
	}
	cell, ok := rep.Cell("t1", "m1")
	if !ok || cell.Total != 1 || cell.Passes != 0 {
		t.Fatalf("expected total without pass, got %+v", cell)
	}
	if _, ok := rep.Cell("t1", "m2"); ok {
		t.Fatal("expected no cell for m2")
	}
	if got := rep.ModelTotals["m2"]; got.Total != 0 || got.SuccessRate != 0 {
		t.Fatalf("expected zero totals for m2, got %+v", got)
	}
}

func TestAggregateReasonsAndFirstComponent(t *testing.T) {
	r := record("m1", "", "file://t1.py:x", boolPtr(false), "first failure", "")
	r.GradingResult.ComponentResults = append(r.GradingResult.ComponentResults,
		ComponentResult{Pass: boolPtr(true), Reason: "second component"})
	rep, err := Aggregate(doc(
		r,
		record("m1", "", "file://t1.py:x", boolPtr(true), "", ""),
		record("m1", "", "file://t1.py:x", boolPtr(false), "second failure", ""),
	))
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	cell, _ := rep.Cell("t1", "m1")
	if cell.Passes != 1 || cell.Total != 3 {
		t.Fatalf("unexpected counts %+v", cell)
	}
	want := []string{"first failure", "second failure"}
	if !reflect.DeepEqual(cell.Reasons, want) {
		t.Fatalf("reasons = %v, want %v", cell.Reasons, want)
	}
}

func TestAggregateSortsStablyByPercentage(t *testing.T) {
	rep, err := Aggregate(doc(
		record("low", "", "file://a.py:x", boolPtr(false), "", ""),
		record("high", "", "file://a.py:x", boolPtr(true), "", ""),
		record("tie", "", "file://b.py:x", boolPtr(true), "", ""),
		record("low", "", "file://c.py:x", boolPtr(true), "", ""),
		record("high", "", "file://c.py:x", boolPtr(true), "", ""),
		record("tie", "", "file://d.py:x", boolPtr(true), "", ""),
	))
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}

	wantCases := []string{"b", "c", "d", "a"}
	if !reflect.DeepEqual(rep.SortedTestCases, wantCases) {
		t.Fatalf("sorted test cases = %v, want %v", rep.SortedTestCases, wantCases)
	}
	var gotModels []string
	for _, m := range rep.SortedModels {
		gotModels = append(gotModels, m.ID)
	}
	wantModels := []string{"high", "tie", "low"}
	if !reflect.DeepEqual(gotModels, wantModels) {
		t.Fatalf("sorted models = %v, want %v", gotModels, wantModels)
	}
	if rep.Models[0].ID != "low" {
		t.Fatalf("expected discovery order untouched, got %+v", rep.Models)
	}
}

func TestAggregateInvariants(t *testing.T) {
	var records []RawResult
	models := []string{"m1", "m2", "m3"}
	for i := 0; i < 60; i++ {
		model := models[i%len(models)]
		key := fmt.Sprintf("file://case%d.py:fn", i%7)
		if i%11 == 0 {
			key = "not-a-key"
		}
		records = append(records, record(model, "", key, boolPtr(i%3 == 0 || i%5 == 0), "", ""))
	}
	rep, err := Aggregate(doc(records...))
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}

	counts := make(map[[2]string]int)
	for _, r := range records {
		if key, ok := recordKey(r); ok {
			counts[[2]string{key, r.Provider.ID}]++
		}
	}
	for pair, n := range counts {
		cell, ok := rep.Cell(pair[0], pair[1])
		if !ok || cell.Total != n {
			t.Fatalf("cell %v total mismatch: %+v vs %d", pair, cell, n)
		}
		if cell.Passes > cell.Total {
			t.Fatalf("passes exceed total for %v", pair)
		}
	}

	for i, name := range rep.SortedTestCases {
		agg := rep.TestCaseTotals[name]
		if agg.Passes > agg.Total || agg.WinPercentage < 0 || agg.WinPercentage > 100 {
			t.Fatalf("bad test case aggregate %s: %+v", name, agg)
		}
		if i > 0 && rep.TestCaseTotals[rep.SortedTestCases[i-1]].WinPercentage < agg.WinPercentage {
			t.Fatalf("test cases not non-increasing at %d", i)
		}
	}
	for i, m := range rep.SortedModels {
		agg := rep.ModelTotals[m.ID]
		if agg.Passes > agg.Total || agg.SuccessRate < 0 || agg.SuccessRate > 100 {
			t.Fatalf("bad model aggregate %s: %+v", m.ID, agg)
		}
		if agg.Total == 0 && agg.SuccessRate != 0 {
			t.Fatalf("zero-total rule broken for %s", m.ID)
		}
		if i > 0 && rep.ModelTotals[rep.SortedModels[i-1].ID].SuccessRate < agg.SuccessRate {
			t.Fatalf("models not non-increasing at %d", i)
		}
	}
}

func TestAggregateRejectsMissingProvider(t *testing.T) {
	_, err := Aggregate(doc(
		record("m1", "", "file://t1.py:x", boolPtr(true), "", ""),
		RawResult{},
	))
	if !errors.Is(err, ErrMissingProvider) {
		t.Fatalf("expected ErrMissingProvider, got %v", err)
	}
	var mpe *MissingProviderError
	if !errors.As(err, &mpe) || mpe.Index != 1 {
		t.Fatalf("expected index 1, got %v", err)
	}

	if _, err := Aggregate(doc(RawResult{Provider: &Provider{}})); !errors.Is(err, ErrMissingProvider) {
		t.Fatalf("expected empty id rejected, got %v", err)
	}
}

func TestAggregateEmptyDocument(t *testing.T) {
	rep, err := Aggregate(Document{})
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if len(rep.Models) != 0 || len(rep.SortedTestCases) != 0 {
		t.Fatalf("expected empty report, got %+v", rep)
	}
}

func TestCellStatsPassRate(t *testing.T) {
	var nilStats *CellStats
	if nilStats.PassRate() != 0 {
		t.Fatal("nil stats should be 0%")
	}
	if got := (&CellStats{Passes: 1, Total: 4}).PassRate(); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
	if got := (&CellStats{}).PassRate(); got != 0 {
		t.Fatalf("expected 0 for empty stats, got %v", got)
	}
}
