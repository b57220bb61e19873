// internal/results/aggregate.go
package results

import (
	"sort"

	"github.com/mwiater/evalgrid/internal/logging"
)

// Aggregate folds the document's records into a Report in a single pass, then
// derives per-test-case and per-model totals and the performance orderings.
// A record without a provider id rejects the whole document.
func Aggregate(doc Document) (*Report, error) {
	var records []RawResult
	if doc.Results != nil {
		records = doc.Results.Results
	}

	rep := &Report{
		Models:         make([]Model, 0),
		TestCases:      make([]TestCase, 0),
		Cells:          make(map[string]map[string]*CellStats),
		TestCaseTotals: make(map[string]TestCaseAggregate),
		ModelTotals:    make(map[string]ModelAggregate),
		Records:        len(records),
	}
	seenModels := make(map[string]struct{})

	for i, record := range records {
		if record.Provider == nil || record.Provider.ID == "" {
			return nil, &MissingProviderError{Index: i}
		}
		modelID := record.Provider.ID
		if _, ok := seenModels[modelID]; !ok {
			label := record.Provider.Label
			if label == "" {
				label = modelID
			}
			seenModels[modelID] = struct{}{}
			rep.Models = append(rep.Models, Model{ID: modelID, Label: label})
		}

		key, ok := recordKey(record)
		if !ok {
			rep.Skipped++
			continue
		}

		row, exists := rep.Cells[key]
		if !exists {
			row = make(map[string]*CellStats)
			rep.Cells[key] = row
			tc := TestCase{Name: key}
			if record.TestCase != nil {
				tc.Description = record.TestCase.Description
			}
			rep.TestCases = append(rep.TestCases, tc)
		}

		stats, exists := row[modelID]
		if !exists {
			stats = &CellStats{Reasons: make([]string, 0)}
			row[modelID] = stats
		}
		stats.Total++

		first, _ := firstComponent(record)
		if first.Pass != nil && *first.Pass {
			stats.Passes++
		}
		if first.Reason != "" {
			stats.Reasons = append(stats.Reasons, first.Reason)
		}
	}

	for _, tc := range rep.TestCases {
		var passes, total int
		for _, m := range rep.Models {
			if stats, ok := rep.Cells[tc.Name][m.ID]; ok {
				passes += stats.Passes
				total += stats.Total
			}
		}
		rep.TestCaseTotals[tc.Name] = TestCaseAggregate{
			Passes:        passes,
			Total:         total,
			WinPercentage: percentage(passes, total),
		}
	}

	for _, m := range rep.Models {
		var passes, total int
		for _, tc := range rep.TestCases {
			if stats, ok := rep.Cells[tc.Name][m.ID]; ok {
				passes += stats.Passes
				total += stats.Total
			}
		}
		rep.ModelTotals[m.ID] = ModelAggregate{
			Passes:      passes,
			Total:       total,
			SuccessRate: percentage(passes, total),
		}
	}

	rep.SortedTestCases = make([]string, 0, len(rep.TestCases))
	for _, tc := range rep.TestCases {
		rep.SortedTestCases = append(rep.SortedTestCases, tc.Name)
	}
	sort.SliceStable(rep.SortedTestCases, func(i, j int) bool {
		return rep.TestCaseTotals[rep.SortedTestCases[i]].WinPercentage > rep.TestCaseTotals[rep.SortedTestCases[j]].WinPercentage
	})

	rep.SortedModels = append(make([]Model, 0, len(rep.Models)), rep.Models...)
	sort.SliceStable(rep.SortedModels, func(i, j int) bool {
		return rep.ModelTotals[rep.SortedModels[i].ID].SuccessRate > rep.ModelTotals[rep.SortedModels[j].ID].SuccessRate
	})

	logging.LogEvent("[AGGREGATE] records=%d models=%d test_cases=%d skipped=%d", rep.Records, len(rep.Models), len(rep.TestCases), rep.Skipped)
	return rep, nil
}

// percentage returns 100*passes/total, or 0 when total is zero.
func percentage(passes, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(passes) / float64(total) * 100
}
