// internal/results/types.go
package results

// Document is the top-level evaluation report, as written by promptfoo.
type Document struct {
	Results *ResultSet `json:"results"`
}

// ResultSet wraps the ordered record list under "results.results".
type ResultSet struct {
	Results []RawResult `json:"results"`
}

// RawResult is a single evaluation record for one provider and one prompt.
type RawResult struct {
	Provider      *Provider      `json:"provider"`
	GradingResult *GradingResult `json:"gradingResult,omitempty"`
	TestCase      *TestCaseInfo  `json:"testCase,omitempty"`
}

// Provider identifies the model under evaluation.
type Provider struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// GradingResult holds the component results produced by the assertions.
type GradingResult struct {
	ComponentResults []ComponentResult `json:"componentResults,omitempty"`
}

// ComponentResult is one graded assertion outcome.
type ComponentResult struct {
	Pass      *bool      `json:"pass,omitempty"`
	Reason    string     `json:"reason,omitempty"`
	Assertion *Assertion `json:"assertion,omitempty"`
}

// Assertion carries the assertion reference, e.g. "file://checks/fix_json.py:check".
type Assertion struct {
	Value string `json:"value,omitempty"`
}

// TestCaseInfo is the test case metadata attached to a record.
type TestCaseInfo struct {
	Description string `json:"description,omitempty"`
}

// Model is a provider id and its display label.
type Model struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// TestCase is a discovered test case and the description first seen for it.
type TestCase struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CellStats counts the outcomes of one (test case, model) pair.
type CellStats struct {
	Passes  int      `json:"passes" yaml:"passes"`
	Total   int      `json:"total" yaml:"total"`
	Reasons []string `json:"reasons" yaml:"reasons"`
}

// PassRate returns the pair's pass percentage in [0, 100].
func (c *CellStats) PassRate() float64 {
	if c == nil {
		return 0
	}
	return percentage(c.Passes, c.Total)
}

// TestCaseAggregate sums a test case across all models.
type TestCaseAggregate struct {
	Passes        int     `json:"passes" yaml:"passes"`
	Total         int     `json:"total" yaml:"total"`
	WinPercentage float64 `json:"win_percentage" yaml:"win_percentage"`
}

// ModelAggregate sums a model across all test cases.
type ModelAggregate struct {
	Passes      int     `json:"passes" yaml:"passes"`
	Total       int     `json:"total" yaml:"total"`
	SuccessRate float64 `json:"success_rate" yaml:"success_rate"`
}

// Report is the fully resolved model handed to renderers.
type Report struct {
	Models          []Model                          `json:"models" yaml:"models"`
	TestCases       []TestCase                       `json:"test_cases" yaml:"test_cases"`
	Cells           map[string]map[string]*CellStats `json:"cells" yaml:"cells"`
	TestCaseTotals  map[string]TestCaseAggregate     `json:"test_case_totals" yaml:"test_case_totals"`
	ModelTotals     map[string]ModelAggregate        `json:"model_totals" yaml:"model_totals"`
	SortedTestCases []string                         `json:"sorted_test_cases" yaml:"sorted_test_cases"`
	SortedModels    []Model                          `json:"sorted_models" yaml:"sorted_models"`
	Records         int                              `json:"records" yaml:"records"`
	Skipped         int                              `json:"skipped" yaml:"skipped"`
}

// Cell returns the stats for a (test case, model) pair, if any record mapped to it.
func (r *Report) Cell(testCase, modelID string) (*CellStats, bool) {
	row, ok := r.Cells[testCase]
	if !ok {
		return nil, false
	}
	stats, ok := row[modelID]
	return stats, ok
}

// Description returns the description recorded for a test case.
func (r *Report) Description(testCase string) string {
	for _, tc := range r.TestCases {
		if tc.Name == testCase {
			return tc.Description
		}
	}
	return ""
}
